// Command hausd serves an in-memory household backend for local development
// and demos of the haus CLI.
package main
