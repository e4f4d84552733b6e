// SPDX-License-Identifier: MIT

package catalog_test

import (
	"fmt"

	"github.com/katalvlaran/polytope/catalog"
)

// ExampleLookup resolves fixed and family names.
func ExampleLookup() {
	for _, name := range []string{"octahedron", "polygon:5", "hypercube:4"} {
		p, _ := catalog.Lookup(name)
		fmt.Println(name, p.Counts())
	}
	// Output:
	// octahedron [1 6 12 8 1]
	// polygon:5 [1 5 5 1]
	// hypercube:4 [1 16 32 24 8 1]
}

// ExampleConcretePlatonic measures the regular icosahedron.
func ExampleConcretePlatonic() {
	ico, _ := catalog.ConcretePlatonic(catalog.Icosahedron)
	r, _ := ico.Circumradius()
	fmt.Printf("%d vertices, circumradius %.3f, edge %.4f\n", ico.VertexCount(), r, ico.EdgeLengths()[0])
	// Output:
	// 12 vertices, circumradius 1.000, edge 1.0515
}
