// SPDX-License-Identifier: MIT

// Package cli wires the congeneric command line: matrix documents in,
// Feldt-Gilmer reports out.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/congeneric/config"
	"github.com/katalvlaran/congeneric/logging"
	"github.com/katalvlaran/congeneric/reliability"
	"github.com/katalvlaran/congeneric/report"
	urfave "github.com/urfave/cli/v3"
)

const (
	appName = "congeneric"

	configFlagName   = "config"
	logLevelFlagName = "log-level"
	formatFlagName   = "format"
	legacyFlagName   = "legacy-aggregation"
	epsilonFlagName  = "epsilon"
	deletedFlagName  = "deleted"
	scoresFlagName   = "scores"
	configEnvVar     = "CONGENERIC_CONFIG"
	logLevelEnvVar   = "CONGENERIC_LOG_LEVEL"
	formatEnvVar     = "CONGENERIC_FORMAT"
	noColorEnvVar    = "NO_COLOR"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	// ErrUsage indicates wrong positional arguments.
	ErrUsage = errors.New("cli: invalid usage")
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info")

	if err := newApp().Run(context.Background(), os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

// settings is the resolved configuration handed to every command through the context.
type settings struct {
	cfg    *config.Config
	format report.Format
	scores bool
	log    *slog.Logger
}

type settingsKey struct{}

func withSettings(ctx context.Context, s *settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) *settings {
	if s, ok := ctx.Value(settingsKey{}).(*settings); ok {
		return s
	}

	return &settings{cfg: config.Default(), format: report.FormatText, log: slog.Default()}
}

func newApp() *urfave.Command {
	return &urfave.Command{
		Name:    appName,
		Version: fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Usage:   "Feldt-Gilmer reliability for congeneric tests",
		Flags: []urfave.Flag{
			&urfave.StringFlag{
				Name:    configFlagName,
				Usage:   "Path to the YAML config file (default: <user config dir>/congeneric/config.yaml)",
				Sources: urfave.EnvVars(configEnvVar),
			},
			&urfave.StringFlag{
				Name:    logLevelFlagName,
				Usage:   "Log level [debug, info, warn, error]",
				Sources: urfave.EnvVars(logLevelEnvVar),
			},
			&urfave.StringFlag{
				Name:    formatFlagName,
				Usage:   "Output format [text, json, yaml]",
				Sources: urfave.EnvVars(formatEnvVar),
			},
			&urfave.BoolFlag{
				Name:  legacyFlagName,
				Usage: "Accumulate item-deleted weight sums the historical way (yields NaN)",
			},
			&urfave.FloatFlag{
				Name:  epsilonFlagName,
				Usage: "Symmetry tolerance for input matrices",
			},
			&urfave.BoolFlag{
				Name:  scoresFlagName,
				Usage: "Input files hold raw item scores (rows are examinees); the sample covariance is computed",
			},
		},
		Commands: []*urfave.Command{
			newEvaluateCmd(),
			newDeletedCmd(),
			newConvertCmd(),
			newBatchCmd(),
		},
		Before: before,
	}
}

// before loads the config file, lets flags and env vars override it and
// installs the resulting settings and logger.
func before(ctx context.Context, cmd *urfave.Command) (context.Context, error) {
	cfg, err := loadConfig(cmd.String(configFlagName))
	if err != nil {
		return ctx, err
	}

	if cmd.IsSet(logLevelFlagName) {
		cfg.LogLevel = cmd.String(logLevelFlagName)
	}
	if cmd.IsSet(formatFlagName) {
		cfg.Format = cmd.String(formatFlagName)
	}
	if cmd.Bool(legacyFlagName) {
		cfg.Aggregation = reliability.AggregationLegacy.String()
	}
	if cmd.IsSet(epsilonFlagName) {
		cfg.Epsilon = cmd.Float(epsilonFlagName)
	}
	if err := cfg.Validate(); err != nil {
		return ctx, err
	}

	s := &settings{
		cfg:    cfg,
		format: cfg.ReportFormat(),
		scores: cmd.Bool(scoresFlagName),
		log:    newLogger(cmd.Root().ErrWriter, cfg.LogLevel),
	}
	s.log.Debug("settings resolved",
		"format", s.format, "scores", s.scores, "aggregation", cfg.Aggregation, "epsilon", cfg.Epsilon)

	return withSettings(ctx, s), nil
}

// loadConfig reads path, or the default location when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			slog.Debug("no user config dir, using defaults", "error", err)
			return config.Default(), nil
		}
		path = p
	}

	return config.Load(path)
}

func newLogger(w io.Writer, level string) *slog.Logger {
	if w == nil {
		w = os.Stderr
	}
	h := logging.NewCLIHandler(w, logging.ParseLogLevel(level))
	if os.Getenv(noColorEnvVar) != "" {
		h = h.WithoutColor()
	}

	return slog.New(h).WithGroup(appName)
}

func writer(cmd *urfave.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}

	return os.Stdout
}
