// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polytope/catalog"
	"github.com/katalvlaran/polytope/concrete"
	"github.com/katalvlaran/polytope/construct"
	"github.com/katalvlaran/polytope/core"
)

var (
	errUnknownOperation = errors.New("unknown operation")
	errArity            = errors.New("wrong number of operands")
)

type unaryOp func(*core.Polytope) (*core.Polytope, error)

type binaryOp func(p, q *core.Polytope) (*core.Polytope, error)

var unaryOps = map[string]unaryOp{
	"dual":      construct.Dual,
	"prism":     construct.Prism,
	"pyramid":   construct.Pyramid,
	"bipyramid": construct.Bipyramid,
	"antiprism": construct.Antiprism,
	"petrie":    construct.PetrieDual,
}

var binaryOps = map[string]binaryOp{
	"join":     construct.Join,
	"duoprism": construct.Duoprism,
	"tegum":    construct.Tegum,
	"compound": construct.Compound,
}

// opMinkowski works on the regular coordinates of both operands.
const opMinkowski = "minkowski"

func operationNames() []string {
	names := []string{opMinkowski}
	for n := range unaryOps {
		names = append(names, n)
	}
	for n := range binaryOps {
		names = append(names, n)
	}
	sort.Strings(names)

	return names
}

func (a *app) opCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "op <operation> <name> [name]",
		Short: "Apply a construction to named polytopes",
		Long: "Operations: " + strings.Join(operationNames(), ", ") + `.
Unary operations take one name, the others two.`,
		Example: `  polytope op prism polygon:5
  polytope op petrie cube
  polytope op minkowski square triangle`,
		Args: cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.runOp(strings.ToLower(args[0]), args[1:])
			if err != nil {
				return err
			}

			return a.emit(cmd, r)
		},
	}
}

func (a *app) runOp(op string, names []string) (Report, error) {
	label := op + "(" + strings.Join(names, ", ") + ")"
	a.log.Debug("applying", slog.String("op", op), slog.Any("operands", names))

	if op == opMinkowski {
		if len(names) != 2 {
			return Report{}, fmt.Errorf("%s takes 2 operands, got %d: %w", op, len(names), errArity)
		}
		return a.minkowski(label, names[0], names[1])
	}

	operands := make([]*core.Polytope, len(names))
	for i, n := range names {
		p, err := catalog.Lookup(n)
		if err != nil {
			return Report{}, err
		}
		operands[i] = p
	}

	var (
		out *core.Polytope
		err error
	)
	if f, ok := unaryOps[op]; ok {
		if len(operands) != 1 {
			return Report{}, fmt.Errorf("%s takes 1 operand, got %d: %w", op, len(operands), errArity)
		}
		out, err = f(operands[0])
	} else if f, ok := binaryOps[op]; ok {
		if len(operands) != 2 {
			return Report{}, fmt.Errorf("%s takes 2 operands, got %d: %w", op, len(operands), errArity)
		}
		out, err = f(operands[0], operands[1])
	} else {
		return Report{}, fmt.Errorf("%q: %w", op, errUnknownOperation)
	}
	if err != nil {
		return Report{}, err
	}

	return newReport(a.log, a.cfg, label, out)
}

func (a *app) minkowski(label, p, q string) (Report, error) {
	cp, err := catalog.LookupConcrete(p)
	if err != nil {
		return Report{}, err
	}
	cq, err := catalog.LookupConcrete(q)
	if err != nil {
		return Report{}, err
	}
	sum, err := concrete.MinkowskiSum(cp, cq, a.cfg.concreteOptions()...)
	if err != nil {
		return Report{}, err
	}
	r, err := newReport(a.log, a.cfg, label, sum.Abstract())
	if err != nil {
		return Report{}, err
	}
	r.addGeometry(a.log, a.cfg, sum)

	return r, nil
}
