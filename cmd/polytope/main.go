// SPDX-License-Identifier: MIT

// Command polytope inspects and combines abstract polytopes.
//
//	polytope info cube
//	polytope op prism polygon:5 --format yaml
//	polytope op duoprism triangle square
//	polytope build octahedron.yaml --config polytope.yaml
//
// Names are those of the catalog package (see "polytope names").
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "polytope:", err)
		os.Exit(1)
	}
}
