// Package app wires application dependencies for the CLI.
//
// It loads daemon configuration (YAML file plus LCORE_* environment
// overrides) and builds the concrete store, identity service, and attestor
// client from it, exposing them via the Wire struct for commands to use.
package app
