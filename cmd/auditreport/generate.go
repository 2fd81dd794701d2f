package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"audit-report/internal/discover"
	"audit-report/internal/model"
	"audit-report/internal/pipeline"
	"audit-report/internal/watch"
)

var (
	watchMode       bool
	ciMode          bool
	maxNonCompliant int
)

var generateCmd = &cobra.Command{
	Use:   "generate [dir]",
	Short: "Generate one report per audit folder",
	Long: `Scans dir (default: input_dir from the config) for folders whose names
start with folder_prefix, and renders the first CSV file in each into
<output_dir>/<csv-stem><output_suffix>. A failing folder does not stop the
others; the exit code is non-zero if any failed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().BoolVar(&watchMode, "watch", false, "Keep running and regenerate a folder when it changes")
	generateCmd.Flags().BoolVar(&ciMode, "ci", false, "Print one JSON summary per report instead of text")
	generateCmd.Flags().IntVar(&maxNonCompliant, "max-noncompliant", -1, "Exit with code 2 when a report has more non-compliant items (-1 disables)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	dir := cfg.InputDir
	if len(args) == 1 {
		dir = args[0]
	}
	opts, err := pipeline.OptionsFromConfig(cfg, logger)
	if err != nil {
		return err
	}
	p := pipeline.New(opts, logger)

	results, err := p.RunBatch(cmd.Context(), dir, cfg.FolderPrefix)
	if err != nil {
		if !watchMode || !errors.Is(err, discover.ErrNoSources) {
			return err
		}
		logger.Warn("nothing to generate yet", zap.Error(err))
	}
	out := cmd.OutOrStdout()
	var summaries []*model.RunSummary
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(out, "FAILED %s: %v\n", r.Source.Folder, r.Err)
			continue
		}
		printSummary(out, r.Summary, ciMode)
		summaries = append(summaries, r.Summary)
	}

	if watchMode {
		w, err := watch.New(dir, cfg.FolderPrefix, watch.DefaultDebounce, func(folder string) {
			csv, err := discover.FindCSV(folder)
			if err != nil || csv == "" {
				logger.Warn("no csv file in folder, skipping", zap.String("folder", folder))
				return
			}
			sum, err := p.Generate(p.JobFor(discover.Source{Folder: folder, CSV: csv}))
			if err != nil {
				logger.Error("source failed", zap.String("source", csv), zap.Error(err))
				return
			}
			printSummary(out, sum, ciMode)
		}, logger)
		if err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		logger.Info("watching for changes", zap.String("dir", dir))
		return w.Run(cmd.Context())
	}

	if n := pipeline.Failed(results); n > 0 {
		return &exitError{code: 1, msg: fmt.Sprintf("%d of %d sources failed", n, len(results))}
	}
	return checkPolicy(summaries)
}

// checkPolicy applies --max-noncompliant.
func checkPolicy(summaries []*model.RunSummary) error {
	if maxNonCompliant < 0 {
		return nil
	}
	for _, s := range summaries {
		if s.Counts.NonCompliant > maxNonCompliant {
			return &exitError{code: 2, msg: fmt.Sprintf("%s: %d non-compliant items (limit %d)",
				s.Source, s.Counts.NonCompliant, maxNonCompliant)}
		}
	}
	return nil
}

func printSummary(w io.Writer, s *model.RunSummary, ci bool) {
	if ci {
		raw, _ := json.Marshal(s)
		fmt.Fprintln(w, string(raw))
		return
	}
	fmt.Fprintf(w, "%s -> %s (%s)\n", s.Source, filepath.Base(s.Output), humanize.Bytes(uint64(s.Bytes)))
	fmt.Fprintf(w, "  OK %d  Non-compliant %d  Info %d  n.a. %d  Other %d\n",
		s.Counts.OK, s.Counts.NonCompliant, s.Counts.Info, s.Counts.NA, s.Counts.Other)
	if s.Trend != "" {
		fmt.Fprintf(w, "  Trend: %s (%+d non-compliant)\n", s.Trend, s.Delta)
	}
}
