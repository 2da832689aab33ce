// Package cmd provides CLI commands for the exprfmt tool.
//
// This package implements the command-line interface for exprfmt, which reads SQL
// expressions and SELECT queries and prints them in the canonical form produced by
// pkg/format.
//
// # Available Commands
//
// The cmd package currently provides:
//   - fmt: Format a file, a directory tree of .sql files, or inline text
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Shared state (the loaded
// config and the logger) is set up by the root command's Before hook.
//
// # Global Options
//
// All commands support global flags:
//   - --config, -c: Config file (defaults to exprfmt.yaml, or $EXPRFMT_CONFIG)
//   - --verbose: Log debug output to stderr
//   - --help, -h: Display command help
//   - --version, -v: Display version information
//
// # Example Usage
//
//	exprfmt fmt queries.sql                      # Print formatted file
//	exprfmt fmt -w queries/                      # Rewrite every .sql file in place
//	exprfmt fmt -e "a+1>b"                       # Format inline text
//	exprfmt fmt -p 42 -e "id = ?"                # Substitute parameters
//	exprfmt -c ci.yaml fmt queries/              # Use a specific config file
package cmd
