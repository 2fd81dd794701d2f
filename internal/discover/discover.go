// Package discover finds the audit folders and record files a batch run
// processes.
package discover

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNoSources is returned when a batch directory holds no processable
// audit folder.
var ErrNoSources = errors.New("no audit folders found")

// Source is one audit folder and the record file inside it. Err is set
// when the folder could not be read; CSV is then empty.
type Source struct {
	Folder string
	CSV    string
	Err    error
}

var readDir = os.ReadDir

// Folders returns the directories directly under dir whose names start with
// prefix, sorted by name.
func Folders(dir, prefix string) ([]string, error) {
	entries, err := readDir(dir)
	if err != nil {
		return nil, fmt.Errorf("discover: read %s: %w", dir, err)
	}
	var out []string
	for _, e := range entries {
		if e.IsDir() && strings.HasPrefix(e.Name(), prefix) {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(out)
	return out, nil
}

// FindCSV returns the first .csv file in folder by name, or "" if none.
func FindCSV(folder string) (string, error) {
	entries, err := readDir(folder)
	if err != nil {
		return "", fmt.Errorf("discover: read %s: %w", folder, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return "", nil
	}
	sort.Strings(names)
	return filepath.Join(folder, names[0]), nil
}

// Sources pairs every matching folder with its record file. Folders without
// a record are returned in skipped. An unreadable folder is returned as a
// Source with Err set, so the caller can report it and go on with the rest.
// ErrNoSources is returned when nothing is left to process.
func Sources(dir, prefix string) (sources []Source, skipped []string, err error) {
	folders, err := Folders(dir, prefix)
	if err != nil {
		return nil, nil, err
	}
	for _, f := range folders {
		csv, err := FindCSV(f)
		if err != nil {
			sources = append(sources, Source{Folder: f, Err: err})
			continue
		}
		if csv == "" {
			skipped = append(skipped, f)
			continue
		}
		sources = append(sources, Source{Folder: f, CSV: csv})
	}
	if len(sources) == 0 {
		return nil, skipped, fmt.Errorf("%w in %s (prefix %q)", ErrNoSources, dir, prefix)
	}
	return sources, skipped, nil
}

// OutputName is the report file name for a record: <stem><suffix>.
func OutputName(csvPath, suffix string) string {
	base := filepath.Base(csvPath)
	return strings.TrimSuffix(base, filepath.Ext(base)) + suffix
}
