// Package main provides the command-line interface for oxcgo.
//
// oxcgo is the CLI driver for this module's core: parsing, semantic
// resolution, constant folding, and document-IR printing. It takes one or
// more glob patterns (doublestar syntax, so "**" recurses) and runs a
// subcommand's pipeline over every matched file.
//
// # Usage
//
//	oxcgo parse [flags] <glob...>
//	oxcgo fold [flags] <glob...>
//	oxcgo outline [flags] <glob...>
//
// # Examples
//
//	# Parse every .ts file under src and print ESTree JSON
//	oxcgo parse 'src/**/*.ts'
//
//	# Show which expressions fold to a compile-time constant
//	oxcgo fold src/constants.ts
//
//	# Print an import/class outline through the document printer
//	oxcgo outline --watch 'src/**/*.tsx'
package main
