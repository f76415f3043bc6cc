// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/congeneric/covfile"
	"github.com/katalvlaran/congeneric/reliability"
	"github.com/katalvlaran/congeneric/report"
	urfave "github.com/urfave/cli/v3"
)

func newEvaluateCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "evaluate",
		Aliases:   []string{"eval"},
		Usage:     "Print the Feldt-Gilmer coefficient of a covariance matrix",
		ArgsUsage: "<matrix.{yaml,json,csv}>",
		UsageText: `congeneric evaluate items.csv              # summary line
   congeneric evaluate --deleted items.yaml   # summary and item-deleted table
   congeneric --format json evaluate items.csv`,
		Flags: []urfave.Flag{
			&urfave.BoolFlag{
				Name:  deletedFlagName,
				Usage: "Also print the item-deleted table (text format)",
			},
		},
		Action: cmdEvaluate,
	}
}

func newDeletedCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "deleted",
		Usage:     "Print the Feldt-Gilmer coefficient obtained when each item is removed",
		ArgsUsage: "<matrix.{yaml,json,csv}>",
		Action:    cmdDeleted,
	}
}

func newConvertCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "convert",
		Usage:     "Validate a matrix document and rewrite it in another format (with --scores: write the covariance of a score file)",
		ArgsUsage: "<in.{yaml,json,csv}> <out.{yaml,json,csv}>",
		Action:    cmdConvert,
	}
}

func cmdEvaluate(ctx context.Context, cmd *urfave.Command) error {
	path, err := singleArg(cmd)
	if err != nil {
		return err
	}
	s := settingsFrom(ctx)

	rep, err := s.buildReport(path)
	if err != nil {
		return err
	}

	w := writer(cmd)
	switch {
	case s.format != report.FormatText:
		return rep.Write(w, s.format)
	case cmd.Bool(deletedFlagName):
		return rep.WriteText(w)
	default:
		_, err = fmt.Fprintln(w, rep.Summary())
		return err
	}
}

func cmdDeleted(ctx context.Context, cmd *urfave.Command) error {
	path, err := singleArg(cmd)
	if err != nil {
		return err
	}
	s := settingsFrom(ctx)

	rep, err := s.buildReport(path)
	if err != nil {
		return err
	}

	if s.format != report.FormatText {
		return rep.Write(writer(cmd), s.format)
	}

	return rep.WriteItemDeleted(writer(cmd))
}

func cmdConvert(ctx context.Context, cmd *urfave.Command) error {
	if cmd.Args().Len() != 2 {
		return fmt.Errorf("%w: %s expects <in> <out>, got %d arguments", ErrUsage, cmd.Name, cmd.Args().Len())
	}
	in, out := cmd.Args().Get(0), cmd.Args().Get(1)
	s := settingsFrom(ctx)

	f, err := covfile.FormatFromPath(out)
	if err != nil {
		return err
	}
	doc, err := s.load(in)
	if err != nil {
		return err
	}

	if err := covfile.Save(out, doc, f); err != nil {
		return err
	}
	s.log.Info("matrix converted", "from", in, "to", out, "items", doc.Matrix.N())

	return nil
}

// load reads the document at path as a covariance matrix, or as raw scores
// when --scores is set.
func (s *settings) load(path string) (*covfile.Document, error) {
	if s.scores {
		return covfile.LoadScores(path, s.cfg.CovarianceOptions()...)
	}

	return covfile.Load(path, s.cfg.CovarianceOptions()...)
}

// buildReport loads the matrix at path and evaluates it with the resolved settings.
func (s *settings) buildReport(path string) (*report.Report, error) {
	doc, err := s.load(path)
	if err != nil {
		return nil, err
	}
	n := doc.Matrix.N()
	s.log.Debug("matrix loaded", "file", path, "items", n)
	if n < reliability.MinItems {
		s.log.Warn("too few items, coefficient is undefined", "items", n, "min", reliability.MinItems)
	}

	fg, err := reliability.NewFeldtGilmer(doc.Matrix, s.cfg.ReliabilityOptions()...)
	if err != nil {
		return nil, err
	}
	s.log.Debug("estimator ready", "pivot", fg.Pivot(), "aggregation", fg.Aggregation())

	return report.Build(fg, doc.Labels)
}

func singleArg(cmd *urfave.Command) (string, error) {
	if cmd.Args().Len() != 1 {
		return "", fmt.Errorf("%w: %s expects exactly one matrix file, got %d arguments", ErrUsage, cmd.Name, cmd.Args().Len())
	}

	return cmd.Args().First(), nil
}
