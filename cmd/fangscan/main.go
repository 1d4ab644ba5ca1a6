// Package main provides the entry point for the fangscan CLI.
//
// Fangscan is a parallel scanner for vampire numbers: integers with an even
// digit count that factor into two half-length fangs whose combined digits
// are a rearrangement of the number's own.
//
// Usage:
//
//	fangscan scan <low> <high>
//	fangscan scan --range <name>
//
// See --help for all available options.
package main

// main is the entry point for fangscan.
func main() {
	Execute()
}
