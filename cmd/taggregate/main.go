// Package main provides the entry point for the Taggregate CLI.
//
// Taggregate collects the cross-reference tags of a set of manuscript
// documents into one ordered list, writes it to a tag file and injects it
// into each document's metadata block.
//
// Usage:
//
//	taggregate aggregate
//	taggregate insert
//	taggregate run
//	taggregate list [files...]
//
// See --help for all available options.
package main

func main() {
	Execute()
}
