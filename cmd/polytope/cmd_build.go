// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/core"
)

var errAmbiguousInput = errors.New("give either boundaries or faces")

// buildInput is the YAML incidence format read by "polytope build".
//
//	name: square
//	vertices: 4
//	boundaries:
//	  - [[0, 1], [1, 2], [2, 3], [3, 0]]   # edges by vertices
//	  - [[0, 1, 2, 3]]                     # the face by edges
//	coordinates: [[0, 0], [1, 0], [1, 1], [0, 1]]
//
// A polyhedron may list faces as vertex cycles instead of boundaries.
type buildInput struct {
	Name        string      `yaml:"name"`
	Vertices    int         `yaml:"vertices"`
	Boundaries  [][][]int   `yaml:"boundaries"`
	Faces       [][]int     `yaml:"faces"`
	Coordinates [][]float64 `yaml:"coordinates"`
}

func (a *app) buildCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "build <file.yaml>",
		Short: "Validate and describe a polytope given by incidences",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := readBuildInput(args[0])
			if err != nil {
				return err
			}
			r, err := a.build(in)
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			return a.emit(cmd, r)
		},
	}
}

func readBuildInput(path string) (buildInput, error) {
	var in buildInput
	data, err := os.ReadFile(path)
	if err != nil {
		return in, err
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err = dec.Decode(&in); err != nil && !errors.Is(err, io.EOF) {
		return in, fmt.Errorf("%s: %w", path, err)
	}
	if in.Name == "" {
		in.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	return in, nil
}

func (a *app) build(in buildInput) (Report, error) {
	var (
		p   *core.Polytope
		err error
	)
	switch {
	case len(in.Faces) > 0 && len(in.Boundaries) > 0:
		return Report{}, errAmbiguousInput
	case len(in.Faces) > 0:
		p, err = core.FromFaces(in.Vertices, in.Faces, a.cfg.validateOptions()...)
	default:
		p, err = assemble(in, a.cfg.validateOptions()...)
	}
	if err != nil {
		return Report{}, err
	}
	a.log.Debug("built", slog.String("name", in.Name), slog.Any("counts", p.Counts()))

	r, err := newReport(a.log, a.cfg, in.Name, p)
	if err != nil {
		return Report{}, err
	}
	if in.Coordinates != nil {
		c, err := concrete.WithCoordinates(p, in.Coordinates)
		if err != nil {
			return Report{}, err
		}
		r.addGeometry(a.log, a.cfg, c)
	}

	return r, nil
}

// assemble feeds the boundaries to a core.Builder.
func assemble(in buildInput, opts ...core.ValidateOption) (*core.Polytope, error) {
	if in.Vertices < 0 {
		return nil, fmt.Errorf("negative vertex count %d: %w", in.Vertices, core.ErrOutOfRange)
	}
	b := core.NewBuilder(len(in.Boundaries))
	if _, err := b.AddVertices(in.Vertices); err != nil {
		return nil, err
	}
	for d, level := range in.Boundaries {
		for _, subs := range level {
			if _, err := b.AddElement(d+1, subs...); err != nil {
				return nil, err
			}
		}
	}

	return b.Build(opts...)
}
