//go:build plan9

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(
		os.Stderr,
		"conndiag reads socket error numbers, which Plan 9 does not provide.\n\nPlease build and run conndiag on Linux, macOS, the BSDs, or Windows.",
	)
	os.Exit(1)
}
