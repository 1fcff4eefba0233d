package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/yourusername/clever-tickets/internal/config"
	"github.com/yourusername/clever-tickets/internal/logger"
	"github.com/yourusername/clever-tickets/internal/metrics"
	"github.com/yourusername/clever-tickets/internal/service"
)

// app holds what the subcommands share once configuration is loaded
type app struct {
	configFile string
	logLevel   string

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	cfg      *config.Config
	logger   *logrus.Logger
	analyzer *service.Analyzer
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	rootCmd := &cobra.Command{
		Use:           "ticket-builder",
		Short:         "Derive football betting markets and build staked tickets",
		Long:          `Turns ensemble match predictions into fair market probabilities, flags value against bookmaker odds, and builds multi-leg tickets for a risk strategy.`,
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, GitCommit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.writeMetrics()
		},
	}
	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.PersistentFlags().StringVarP(&a.configFile, "config", "c", "./config/config.yaml", "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(newAnalyzeCmd(a), newTicketCmd(a), newStrategiesCmd(a))
	return rootCmd
}

func (a *app) setup() error {
	cfg, err := config.LoadWithDefaults(a.configFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.logLevel != "" {
		cfg.App.LogLevel = a.logLevel
	}
	if err := config.Validate(cfg); err != nil {
		return err
	}
	a.cfg = cfg

	// stdout carries the JSON result, so logs go to stderr
	a.logger = logger.New(cfg.App.LogLevel, a.errOut)
	a.logger.WithFields(logrus.Fields{
		"config":      a.configFile,
		"environment": cfg.App.Environment,
		"version":     Version,
	}).Debug("Configuration loaded")

	if cfg.Metrics.Enabled {
		metrics.InitRegistry()
	}

	a.analyzer, err = service.NewFromConfig(cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to setup analyzer: %w", err)
	}
	return nil
}

func (a *app) writeMetrics() error {
	if a.cfg == nil || !a.cfg.Metrics.Enabled || a.cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := metrics.WriteTextfile(a.cfg.Metrics.Textfile); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	a.logger.WithField("path", a.cfg.Metrics.Textfile).Debug("Metrics written")
	return nil
}

func (a *app) printJSON(v interface{}) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
