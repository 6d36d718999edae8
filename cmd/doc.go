// Package cmd implements the command-line interface of ditto. It provides a
// small command tree for mining databases, drawing covers and generating
// synthetic data.
//
// The package is organized into several subpackages:
//
//   - mine: Mine a database and export the code table and cover (json, yaml, gob, binary)
//   - show: Mine a database and draw its cover with one pattern highlighted
//   - generate: Generate a database with planted patterns
//   - util: Shared utilities for command-line processing and configuration (internal use)
//
// See ditto -help for a list of all commands.
package cmd
