// Command salsa20 is the CLI entry point for the Salsa20/20 stream cipher
// library.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
