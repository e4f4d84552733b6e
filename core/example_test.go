package core_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/polytope/core"
)

// ExampleNew builds a triangle from its vertex count and boundaries.
func ExampleNew() {
	// 1) Three vertices, three edges, one face.
	tri, err := core.New(3,
		[][]int{{0, 1}, {1, 2}, {2, 0}},
		[][]int{{0, 1, 2}},
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 2) Inspect it.
	fmt.Println("rank:", tri.Rank())
	fmt.Println("counts:", tri.Counts())
	edges, _ := tri.Superelements(0, 0)
	fmt.Println("edges at vertex 0:", edges)

	// Output:
	// rank: 2
	// counts: [1 3 3 1]
	// edges at vertex 0: [0 2]
}

// ExampleFromFaces builds a square pyramid and takes its dual.
func ExampleFromFaces() {
	pyr, _ := core.FromFaces(5, [][]int{
		{0, 1, 2, 3},
		{0, 1, 4}, {1, 2, 4}, {2, 3, 4}, {3, 0, 4},
	})
	fmt.Println("pyramid:", pyr.Counts())
	fmt.Println("dual:   ", core.Dual(pyr).Counts())

	apex, _ := pyr.VertexFigure(4)
	fmt.Println("apex figure:", apex.Counts())

	// Output:
	// pyramid: [1 5 8 5 1]
	// dual:    [1 5 8 5 1]
	// apex figure: [1 4 4 1]
}

// ExamplePolytope_Validate shows how an axiom failure is reported.
func ExamplePolytope_Validate() {
	// Vertex 3 belongs to no edge.
	_, err := core.New(4, [][]int{{0, 1}, {1, 2}, {2, 0}}, [][]int{{0, 1, 2}})

	var ae *core.AxiomError
	if errors.As(err, &ae) {
		fmt.Println(ae.Kind, ae.Low)
	}
	fmt.Println(errors.Is(err, core.ErrAxiomViolation))

	// Output:
	// UnequalChainLength (0:3)
	// true
}
