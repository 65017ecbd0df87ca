// SPDX-License-Identifier: MIT

// Command linsolve solves dense linear systems read from YAML documents.
//
// Usage:
//
//	linsolve solve --file system.yaml
//	linsolve lu --file matrix.yaml --precision 6
//	cat system.yaml | linsolve solve -f - --trace
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "linsolve:", err)
		os.Exit(1)
	}
}
