// Package commands defines the marketplace CLI and wires dependencies for subcommands.
//
// Commands
//
//   - register       Create a store account
//   - login          Sign in and keep the session token encrypted on disk
//   - logout         Forget the session, the cached profile and the cart
//   - whoami         Show the current session
//   - products       Sync, search and show products from the local cache
//   - cart           Add, edit, list and watch the shopping cart
//   - profile        Show the signed-in user's profile
//   - settings       Show or change theme and dynamic colour
//
// # Implementation
//
// The root command reads configuration (environment, optional .env file,
// then flags) and builds the dependency graph before any subcommand runs.
// Each command gets a context bounded by --timeout. Output is plain text by
// default, or JSON/YAML with --output.
package commands
