// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/polytope/catalog"
)

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <name>",
		Short: "Describe a named polytope",
		Example: `  polytope info icosahedron
  polytope info hypercube:4 --format yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := args[0]
			p, err := catalog.Lookup(name)
			if err != nil {
				return err
			}
			r, err := newReport(a.log, a.cfg, name, p)
			if err != nil {
				return err
			}
			if c, err := catalog.LookupConcrete(name); err == nil {
				r.addGeometry(a.log, a.cfg, c)
			} else {
				a.log.Debug("no coordinates", slog.String("name", name), slog.Any("err", err))
			}

			return a.emit(cmd, r)
		},
	}
}

func (a *app) namesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the names info and op accept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, n := range catalog.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), n)
			}
			return nil
		},
	}
}
