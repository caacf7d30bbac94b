package main

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-bstoolkit/pkg/config"
	"github.com/goliatone/go-bstoolkit/pkg/logging"
	"github.com/goliatone/go-bstoolkit/pkg/prompt"
	"github.com/goliatone/go-bstoolkit/pkg/renderers/bootstrap"
)

var (
	version = "dev"
	commit  = "unknown"
)

// app carries the state shared by every subcommand once the persistent
// flags are parsed.
type app struct {
	logLevel   string
	pretty     bool
	configPath string

	logger    zerolog.Logger
	cfg       config.Config
	collector *prompt.Collector
}

func newRootCommand(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "bstoolkit",
		Short: "Render Bootstrap forms, pagination and asset links from the command line",
		Long: `bstoolkit previews the markup produced by the Bootstrap template helpers:
pagination windows, bound forms loaded from JSON or YAML, and asset tags.`,
		Version:       fmt.Sprintf("%s (commit: %s)", version, commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.PersistentFlags()
	flags.StringVar(&a.logLevel, "log-level", string(logging.LevelInfo), "minimum log level (debug, info, warn, error)")
	flags.BoolVar(&a.pretty, "pretty", false, "human readable log output")
	flags.StringVarP(&a.configPath, "config", "c", "", "configuration file (JSON or YAML)")

	root.AddCommand(
		newPaginateCommand(a),
		newFormCommand(a),
		newAssetsCommand(a),
	)
	return root
}

func (a *app) setup(stderr io.Writer) error {
	level, err := logging.ParseLevel(a.logLevel)
	if err != nil {
		return err
	}
	a.logger = logging.Setup(logging.Config{Level: level, Pretty: a.pretty, Output: stderr})

	if a.configPath != "" {
		a.cfg, err = config.LoadFile(a.configPath)
	} else {
		a.cfg, err = config.New()
	}
	if err != nil {
		return err
	}
	a.logger.Debug().
		Str("config", a.configPath).
		Str("css_url", a.cfg.CSSURL).
		Msg("configuration loaded")

	if a.collector == nil {
		a.collector = prompt.New()
	}
	return nil
}

func (a *app) renderer() (*bootstrap.Renderer, error) {
	return bootstrap.New(
		bootstrap.WithConfig(a.cfg),
		bootstrap.WithLogger(logging.Component(a.logger, "bootstrap")),
	)
}
