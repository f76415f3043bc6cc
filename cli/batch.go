// SPDX-License-Identifier: MIT
package cli

import (
	"context"
	"fmt"
	"runtime"

	"github.com/katalvlaran/congeneric/report"
	urfave "github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

const jobsFlagName = "jobs"

func newBatchCmd() *urfave.Command {
	return &urfave.Command{
		Name:      "batch",
		Usage:     "Evaluate several matrix files concurrently, reporting in argument order",
		ArgsUsage: "<matrix>...",
		UsageText: `congeneric batch form-a.csv form-b.csv form-c.yaml
   congeneric --format json batch --jobs 2 forms/*.csv`,
		Flags: []urfave.Flag{
			&urfave.IntFlag{
				Name:  jobsFlagName,
				Usage: "Maximum number of files evaluated at once (default: number of CPUs)",
			},
		},
		Action: cmdBatch,
	}
}

func cmdBatch(ctx context.Context, cmd *urfave.Command) error {
	paths := cmd.Args().Slice()
	if len(paths) == 0 {
		return fmt.Errorf("%w: %s expects at least one matrix file", ErrUsage, cmd.Name)
	}
	s := settingsFrom(ctx)

	jobs := int(cmd.Int(jobsFlagName))
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}

	entries := make([]report.Entry, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rep, err := s.buildReport(path)
			if err != nil {
				return err
			}
			entries[i] = report.Entry{Source: path, Report: rep}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	s.log.Debug("batch complete", "files", len(paths), "jobs", jobs)

	return report.WriteBatch(writer(cmd), s.format, entries)
}
