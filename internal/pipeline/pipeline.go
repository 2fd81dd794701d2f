// Package pipeline wires loader, organizer and renderer together for one
// record source, and runs them over a batch directory.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"audit-report/internal/analyze"
	"audit-report/internal/config"
	"audit-report/internal/discover"
	"audit-report/internal/history"
	"audit-report/internal/media"
	"audit-report/internal/model"
	"audit-report/internal/output"
	"audit-report/internal/record"
	"audit-report/internal/section"
)

// Options configure generation. The zero value renders into the working
// directory with the default suffix and no side files.
type Options struct {
	OutputDir     string
	OutputSuffix  string
	Location      *time.Location
	ShowLocations bool

	// Logo is an encoded data URI, or "".
	Logo       string
	ExportCSV  bool
	ExportJSON bool
	History    bool

	// Now stamps summaries and history entries; nil means time.Now.
	Now func() time.Time
}

// OptionsFromConfig maps the loaded configuration onto Options and encodes
// the configured logo.
func OptionsFromConfig(cfg *config.Config, log *zap.Logger) (Options, error) {
	loc, err := cfg.Location()
	if err != nil {
		return Options{}, err
	}
	return Options{
		OutputDir:     cfg.OutputDir,
		OutputSuffix:  cfg.OutputSuffix,
		Location:      loc,
		ShowLocations: cfg.ShowLocations,
		Logo:          media.LoadLogo(cfg.Logo, log),
		ExportCSV:     cfg.Exports.CSV,
		ExportJSON:    cfg.Exports.JSON,
		History:       cfg.History,
	}, nil
}

func (o Options) render() output.Options {
	return output.Options{Location: o.Location, ShowLocations: o.ShowLocations}
}

func (o Options) now() time.Time {
	if o.Now != nil {
		return o.Now()
	}
	return time.Now()
}

// Job is one report to produce: the record file, the directory its images
// are looked up in, and the destination path.
type Job struct {
	CSV      string
	ImageDir string
	Output   string
}

// Result is the outcome of one batch source. Err is set when the source
// failed; the other sources are unaffected.
type Result struct {
	Source  discover.Source
	Summary *model.RunSummary
	Err     error
}

type Pipeline struct {
	opts Options
	log  *zap.Logger
}

func New(opts Options, log *zap.Logger) *Pipeline {
	if log == nil {
		log = zap.NewNop()
	}
	if opts.OutputSuffix == "" {
		opts.OutputSuffix = config.DefaultConfig().OutputSuffix
	}
	return &Pipeline{opts: opts, log: log}
}

// Assemble loads a record blob and groups it into sections.
func Assemble(source string, r io.Reader, logo string) (*model.Report, error) {
	meta, items, err := record.Load(r)
	if err != nil {
		return nil, err
	}
	return &model.Report{
		Source:   source,
		Metadata: meta,
		Sections: section.Organize(items),
		Logo:     logo,
	}, nil
}

// JobFor places the report for src in the output directory.
func (p *Pipeline) JobFor(src discover.Source) Job {
	return Job{
		CSV:      src.CSV,
		ImageDir: src.Folder,
		Output:   filepath.Join(p.opts.OutputDir, discover.OutputName(src.CSV, p.opts.OutputSuffix)),
	}
}

// Generate produces the report for job, plus any configured side files,
// and returns the run summary. The report is either fully written or not
// written at all.
func (p *Pipeline) Generate(job Job) (*model.RunSummary, error) {
	f, err := os.Open(job.CSV)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", job.CSV, err)
	}
	defer f.Close()

	rep, err := Assemble(filepath.Base(job.CSV), f, p.opts.Logo)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", job.CSV, err)
	}

	if err := os.MkdirAll(filepath.Dir(job.Output), 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	imgs := media.NewDirResolver(job.ImageDir, p.log)
	ropts := p.opts.render()
	if err := output.WriteReport(job.Output, rep, imgs, ropts); err != nil {
		return nil, fmt.Errorf("write %s: %w", job.Output, err)
	}

	base := strings.TrimSuffix(job.Output, filepath.Ext(job.Output))
	if p.opts.ExportCSV {
		if err := output.WriteCSV(base+".csv", rep, ropts); err != nil {
			return nil, fmt.Errorf("write csv export: %w", err)
		}
	}
	if p.opts.ExportJSON {
		if err := output.WriteJSON(base+".json", rep, ropts); err != nil {
			return nil, fmt.Errorf("write json export: %w", err)
		}
	}

	now := p.opts.now()
	counts, tallies := analyze.Tally(rep.Sections, p.opts.ShowLocations)
	sum := &model.RunSummary{
		RunID:        uuid.NewString(),
		TimestampUtc: now.UTC().Format(time.RFC3339),
		Source:       rep.Source,
		Output:       job.Output,
		Counts:       counts,
		Sections:     tallies,
	}
	if fi, err := os.Stat(job.Output); err == nil {
		sum.Bytes = fi.Size()
	}

	if p.opts.History {
		tr, err := history.Record(filepath.Dir(job.Output), sum, rep.Metadata.Title(), job.Output, now)
		if err != nil {
			// The report itself is already in place.
			p.log.Warn("history not updated", zap.String("source", rep.Source), zap.Error(err))
		} else {
			sum.Trend, sum.Delta = tr.Label, tr.Delta
		}
	}

	p.log.Info("report written",
		zap.String("source", rep.Source),
		zap.String("output", job.Output),
		zap.Int("items", counts.Total),
		zap.Int("noncompliant", counts.NonCompliant),
	)
	return sum, nil
}

// RunBatch generates one report per audit folder under dir, in folder
// order. A failing source is logged and recorded in its Result; the batch
// goes on. The returned error is only set when nothing could be attempted
// or ctx was cancelled.
func (p *Pipeline) RunBatch(ctx context.Context, dir, prefix string) ([]Result, error) {
	sources, skipped, err := discover.Sources(dir, prefix)
	for _, f := range skipped {
		p.log.Warn("no csv file in folder, skipping", zap.String("folder", f))
	}
	if err != nil {
		return nil, err
	}
	if p.opts.OutputDir != "" {
		if err := os.MkdirAll(p.opts.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("create output dir: %w", err)
		}
	}

	results := make([]Result, 0, len(sources))
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		if src.Err != nil {
			p.log.Error("source failed", zap.String("folder", src.Folder), zap.Error(src.Err))
			results = append(results, Result{Source: src, Err: src.Err})
			continue
		}
		sum, err := p.Generate(p.JobFor(src))
		if err != nil {
			p.log.Error("source failed", zap.String("source", src.CSV), zap.Error(err))
		}
		results = append(results, Result{Source: src, Summary: sum, Err: err})
	}
	return results, nil
}

// Failed counts the results that carry an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
