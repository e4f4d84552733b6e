// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// app holds the resolved settings shared by the subcommands.
type app struct {
	configPath string
	format     string
	logLevel   string

	cfg Config
	log *slog.Logger
}

// newRootCmd builds the command tree. Each call returns fresh state, so
// tests can run commands side by side.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "polytope",
		Short: "Inspect and combine abstract polytopes",
		Long: `polytope builds polytopes by name or from YAML incidence data,
applies the classical constructions to them and reports their element
counts, flag count, orientability and, where coordinates exist, their
circumradius and edge length.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.format, "format", formatText, "output format: text or yaml")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: debug, info, warn or error")

	root.AddCommand(a.infoCmd(), a.opCmd(), a.buildCmd(), a.namesCmd())

	return root
}

// setup loads the config file and lets explicitly set flags override it.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Format = a.format
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if err = cfg.validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}
	level, _ := parseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("configured",
		slog.String("config", a.configPath),
		slog.String("format", cfg.Format),
		slog.Int("workers", cfg.Workers),
	)

	return nil
}

// emit writes the report of one result in the configured format.
func (a *app) emit(cmd *cobra.Command, r Report) error {
	return writeReport(cmd.OutOrStdout(), a.cfg.Format, r)
}
