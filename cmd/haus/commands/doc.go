// Package commands defines the haus CLI.
//
// Commands
//
//   - login           Log in with an existing account
//   - join            Create an account and log in
//   - logout          End the session
//   - whoami          Show the logged-in user
//   - chores          List your chores
//   - complete        Mark a chore as done
//   - members         List household members
//   - add-chore       Create a household chore
//   - delete-account  Delete your account
//   - dashboard       Chores and members at once
//
// # Implementation
//
// Every invocation is one page load: the root command loads config, restores
// the session from the store and builds the controllers before the subcommand
// runs, then waits for pending reconciliation before exiting.
package commands
