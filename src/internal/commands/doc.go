// Package commands implements CLI command handlers for hostsctl.
//
// Each command implements the Runner interface:
//   - Init(): parse arguments and load the configuration
//   - Run(): execute the command
//   - Name(): return the command name for routing
//
// # Available Commands
//
//   - list: print the mappings of the hosts file
//   - add, enable, disable, remove: edit a single mapping
//   - backup, backups, restore: manage hosts file backups
//   - edit: open the hosts file in an external editor
//   - self-check: inspect the configuration and the hosts file
//   - server: serve the local HTTP API
//   - init-config: write the default configuration file
//
// Commands are thin wrappers around the store, backup and check packages.
package commands
