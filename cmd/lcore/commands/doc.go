// Package commands defines the lcore CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - init      Generate a device identity and persist it
//   - import    Import an identity from a hex key or mnemonic phrase
//   - did       Print the did:key identifier (conformance output)
//   - mnemonic  Print the 24-word backup phrase for the stored key
//   - sign      Sign a JSON payload and print the submission envelope
//   - submit    Sign a JSON payload and post it to the attestor
//   - run       Run the continuous telemetry submission daemon
//
// # Implementation
//
// The root command loads the effective config (defaults, YAML file, LCORE_*
// environment overrides, then flags) and builds a dependency graph (record
// store, identity service, attestor client) before any subcommand runs.
package commands
