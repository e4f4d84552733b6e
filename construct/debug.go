// SPDX-License-Identifier: MIT
// Package: polytope/construct
//
// debug.go — proof-obligation checks.
//
// Constructors build their results with core.Assemble, which skips the
// axiom check: each one is responsible for producing a valid polytope from
// valid inputs. Built with -tags polytope_debug, every result is
// re-validated and a failure is logged and turned into a panic.

package construct

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/polytope/core"
)

// checked runs the debug assertion on a successful constructor result.
func checked(method string, p *core.Polytope, err error) (*core.Polytope, error) {
	if err != nil {
		return nil, err
	}
	if debugChecks {
		assertValid(method, p)
	}

	return p, nil
}

// assertValid panics when p breaks a polytope axiom.
func assertValid(method string, p *core.Polytope) {
	if err := p.Validate(); err != nil {
		slog.Error("constructor produced an invalid polytope",
			slog.String("method", method),
			slog.Any("counts", p.Counts()),
			slog.Any("err", err),
		)
		panic(fmt.Sprintf("construct: %s: %v", method, err))
	}
}
