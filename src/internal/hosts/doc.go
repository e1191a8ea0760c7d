// Package hosts implements the hosts file data model and its text format.
//
// The package is pure: it resolves where the hosts file lives, parses its
// text into entries and renders entries back to text. It never touches the
// filesystem; the store package composes it with file access.
//
// # Format
//
//	# Hosts file managed by hostsctl
//	# Generated automatically
//
//	192.168.1.10 api.local db.local
//	# 10.0.0.1 old.local
//
// Active lines expand to one entry per hostname. A commented line holding
// exactly one mapping is a disabled entry that can be re-enabled without
// retyping it. Every other line is skipped and reported in ParseResult.Skipped.
package hosts
