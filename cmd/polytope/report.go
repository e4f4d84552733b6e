// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
	"github.com/katalvlaran/polytope/flags"
)

// Report summarises one polytope for output.
type Report struct {
	Name       string `yaml:"name"`
	Rank       int    `yaml:"rank"`
	Counts     []int  `yaml:"counts,flow"`
	Compound   bool   `yaml:"compound"`
	Flags      int    `yaml:"flags"`
	Orientable *bool  `yaml:"orientable,omitempty"`

	Dim          *int     `yaml:"dim,omitempty"`
	Circumradius *float64 `yaml:"circumradius,omitempty"`
	EdgeLength   *float64 `yaml:"edge_length,omitempty"`
}

// newReport describes p. Orientability is skipped above cfg.MaxFlags
// because it enumerates every flag.
func newReport(log *slog.Logger, cfg Config, name string, p *core.Polytope) (Report, error) {
	r := Report{Name: name, Rank: p.Rank(), Counts: p.Counts(), Compound: p.IsCompound()}
	n, err := flags.Count(p)
	if err != nil {
		return r, err
	}
	r.Flags = n
	if n > cfg.MaxFlags {
		log.Info("skipping orientability", slog.String("name", name), slog.Int("flags", n), slog.Int("max_flags", cfg.MaxFlags))
		return r, nil
	}
	ok, err := flags.IsOrientable(p)
	if err != nil {
		return r, err
	}
	r.Orientable = &ok

	return r, nil
}

// addGeometry fills the concrete fields. A polytope without a common
// circumsphere or with unequal edges simply omits those fields.
func (r *Report) addGeometry(log *slog.Logger, cfg Config, c *concrete.Polytope) {
	dim := c.Dim()
	r.Dim = &dim
	if rad, err := c.Circumradius(cfg.concreteOptions()...); err == nil {
		r.Circumradius = &rad
	} else {
		log.Debug("no circumsphere", slog.String("name", r.Name), slog.Any("err", err))
	}
	if l, ok := uniform(c.EdgeLengths(), cfg); ok {
		r.EdgeLength = &l
	}
}

// uniform returns the common value of xs, if there is one.
func uniform(xs []float64, cfg Config) (float64, bool) {
	if len(xs) == 0 {
		return 0, false
	}
	tol := cfg.Tolerance
	if tol == 0 {
		tol = concrete.DefaultTolerance
	}
	for _, x := range xs[1:] {
		if math.Abs(x-xs[0]) > tol*max(1, xs[0]) {
			return 0, false
		}
	}

	return xs[0], true
}

// writeReport prints r as text or YAML.
func writeReport(w io.Writer, format string, r Report) error {
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "name:       %s\n", r.Name)
	fmt.Fprintf(w, "rank:       %d\n", r.Rank)
	fmt.Fprintf(w, "counts:     %v\n", r.Counts)
	fmt.Fprintf(w, "compound:   %t\n", r.Compound)
	fmt.Fprintf(w, "flags:      %d\n", r.Flags)
	if r.Orientable != nil {
		fmt.Fprintf(w, "orientable: %t\n", *r.Orientable)
	}
	if r.Dim != nil {
		fmt.Fprintf(w, "dim:        %d\n", *r.Dim)
	}
	if r.Circumradius != nil {
		fmt.Fprintf(w, "circumradius: %.6g\n", *r.Circumradius)
	}
	if r.EdgeLength != nil {
		fmt.Fprintf(w, "edge length:  %.6g\n", *r.EdgeLength)
	}

	return nil
}
