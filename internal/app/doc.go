// Package app wires application dependencies for the CLI.
//
// It loads Config from the environment, builds the session store, backend
// client and controllers, and exposes them via the Wire struct for commands
// to use.
package app
