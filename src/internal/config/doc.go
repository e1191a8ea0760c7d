// Package config handles the hostsctl configuration file.
//
// The configuration is an optional TOML file. A missing file yields the
// defaults, so hostsctl works out of the box against the system hosts file.
//
//	[general]
//	app_name = "hostsctl"     # name written into the hosts file banner
//	hosts_file = ""           # override of the system hosts path
//
//	[backup]
//	dir = ""                  # override of the desktop directory
//
//	[editor]
//	command = ""              # e.g. "code --wait"; empty uses the OS default
//
//	[server]
//	listen_addr = "127.0.0.1:8765"
//
// Relative paths are resolved against the directory holding the
// configuration file. Validation uses go-playground/validator and reports
// every problem at once as ValidationErrors.
package config
