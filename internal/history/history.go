// Package history keeps an index of generated reports under
// <output_dir>/history and reports the non-compliant trend per source.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"audit-report/internal/analyze"
	"audit-report/internal/model"
)

// MaxEntries bounds the index; older entries are dropped first.
const MaxEntries = 200

type IndexEntry struct {
	RunID        string             `json:"runId"`
	TimestampUTC string             `json:"timestampUtc"`
	Source       string             `json:"source"`
	Title        string             `json:"title,omitempty"`
	Counts       model.StatusCounts `json:"counts"`
	HTMLFile     string             `json:"htmlFile"`
}

type Index struct {
	Entries []IndexEntry `json:"entries"`
}

type Trend struct {
	Previous int
	Current  int
	Delta    int
	Label    string // IMPROVING / DECLINING / SAME / FIRST_RUN
}

// Load reads the index in outDir. A missing index is empty; an index that
// cannot be read or parsed is an error, so it is never overwritten.
func Load(outDir string) (Index, error) {
	var idx Index
	raw, err := os.ReadFile(indexPath(outDir))
	if errors.Is(err, fs.ErrNotExist) {
		return idx, nil
	}
	if err != nil {
		return idx, fmt.Errorf("read history index: %w", err)
	}
	if len(raw) == 0 {
		return idx, nil
	}
	if err := json.Unmarshal(raw, &idx); err != nil {
		return Index{}, fmt.Errorf("parse %s: %w", indexPath(outDir), err)
	}
	return idx, nil
}

// Previous returns the non-compliant count of the latest entry for source,
// or -1 when there is none.
func (idx Index) Previous(source string) int {
	for i := len(idx.Entries) - 1; i >= 0; i-- {
		if idx.Entries[i].Source == source {
			return idx.Entries[i].Counts.NonCompliant
		}
	}
	return -1
}

// Record snapshots the report at htmlPath into the history directory,
// appends sum to the index and returns the trend against the previous run
// of the same source.
func Record(outDir string, sum *model.RunSummary, title string, htmlPath string, now time.Time) (Trend, error) {
	historyDir := filepath.Join(outDir, "history")
	if err := os.MkdirAll(historyDir, 0o755); err != nil {
		return Trend{}, err
	}

	idx, err := Load(outDir)
	if err != nil {
		return Trend{}, err
	}
	prev := idx.Previous(sum.Source)

	ts := now.UTC().Format("20060102-150405")
	stem := sum.Source
	if ext := filepath.Ext(stem); ext != "" {
		stem = stem[:len(stem)-len(ext)]
	}
	htmlName := fmt.Sprintf("%s-%s-%s.html", stem, ts, shortID(sum.RunID))
	if err := copyFile(htmlPath, filepath.Join(historyDir, htmlName)); err != nil {
		return Trend{}, fmt.Errorf("snapshot %s: %w", htmlPath, err)
	}

	idx.Entries = append(idx.Entries, IndexEntry{
		RunID:        sum.RunID,
		TimestampUTC: now.UTC().Format(time.RFC3339),
		Source:       sum.Source,
		Title:        title,
		Counts:       sum.Counts,
		HTMLFile:     filepath.ToSlash(filepath.Join("history", htmlName)),
	})
	if len(idx.Entries) > MaxEntries {
		idx.Entries = idx.Entries[len(idx.Entries)-MaxEntries:]
	}

	raw, err := json.MarshalIndent(idx, "", "  ")
	if err != nil {
		return Trend{}, err
	}
	if err := os.WriteFile(indexPath(outDir), raw, 0o644); err != nil {
		return Trend{}, err
	}

	tr := Trend{Previous: prev, Current: sum.Counts.NonCompliant}
	tr.Label, tr.Delta = analyze.Trend(prev, tr.Current)
	return tr, nil
}

func indexPath(outDir string) string {
	return filepath.Join(outDir, "history", "index.json")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func copyFile(src, dst string) error {
	raw, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, raw, 0o644)
}
