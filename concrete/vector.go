// SPDX-License-Identifier: MIT

package concrete

import (
	"math"

	"github.com/katalvlaran/polytope/matrix"
)

func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)

	return out
}

func sub(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}

	return out
}

func add(a, b []float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] + b[i]
	}

	return out
}

func scaled(a []float64, s float64) []float64 {
	out := make([]float64, len(a))
	for i := range a {
		out[i] = a[i] * s
	}

	return out
}

func dot(a, b []float64) float64 {
	var s float64
	for i := range a {
		s += a[i] * b[i]
	}

	return s
}

func dist(a, b []float64) float64 {
	d := sub(a, b)

	return math.Sqrt(dot(d, d))
}

// concat returns (a, b) as one vector.
func concat(a, b []float64) []float64 {
	out := make([]float64, 0, len(a)+len(b))
	out = append(out, a...)

	return append(out, b...)
}

// mean returns the average of the points at idx (all points when idx is nil).
func mean(points [][]float64, idx []int, dim int) []float64 {
	out := make([]float64, dim)
	n := len(idx)
	if idx == nil {
		n = len(points)
	}
	if n == 0 {
		return out
	}
	for k := 0; k < n; k++ {
		pt := points[k]
		if idx != nil {
			pt = points[idx[k]]
		}
		for i := range out {
			out[i] += pt[i]
		}
	}
	for i := range out {
		out[i] /= float64(n)
	}

	return out
}

// tolerance scales eps by the largest absolute coordinate (at least 1).
func tolerance(eps float64, points [][]float64) float64 {
	scale := 1.0
	for _, pt := range points {
		for _, x := range pt {
			scale = math.Max(scale, math.Abs(x))
		}
	}

	return eps * scale
}

// affineBasis picks, in index order, the differences points[j]-points[0]
// that are linearly independent of those already picked. Its length is the
// affine dimension of the point set.
func affineBasis(points [][]float64, eps float64) ([][]float64, error) {
	if len(points) < 2 || len(points[0]) == 0 {
		return nil, nil
	}
	var basis [][]float64
	for j := 1; j < len(points) && len(basis) < len(points[0]); j++ {
		cand := append(append([][]float64{}, basis...), sub(points[j], points[0]))
		m, err := matrix.FromRows(cand)
		if err != nil {
			return nil, err
		}
		r, err := matrix.Rank(m, matrix.WithEpsilon(eps))
		if err != nil {
			return nil, err
		}
		if r == len(cand) {
			basis = cand
		}
	}

	return basis, nil
}
