// Package app wires application dependencies for the CLI.
//
// Config is read from MARKETPLACE_* environment variables (and an optional
// .env file). NewWire builds the concrete stores, the store API client and
// the feature services from it, exposing them via the Wire struct for
// commands to use.
package app
