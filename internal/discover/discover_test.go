package discover

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestSources(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "audit_b", "b.csv"))
	touch(t, filepath.Join(root, "audit_a", "z.csv"))
	touch(t, filepath.Join(root, "audit_a", "m.CSV"))
	touch(t, filepath.Join(root, "audit_a", "photo.jpg"))
	touch(t, filepath.Join(root, "audit_empty", "notes.txt"))
	touch(t, filepath.Join(root, "other", "x.csv"))
	touch(t, filepath.Join(root, "audit_file.csv"))

	sources, skipped, err := Sources(root, "audit_")
	require.NoError(t, err)
	assert.Equal(t, []Source{
		{Folder: filepath.Join(root, "audit_a"), CSV: filepath.Join(root, "audit_a", "m.CSV")},
		{Folder: filepath.Join(root, "audit_b"), CSV: filepath.Join(root, "audit_b", "b.csv")},
	}, sources)
	assert.Equal(t, []string{filepath.Join(root, "audit_empty")}, skipped)
}

func TestSourcesNone(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "audit_x", "readme.txt"))

	_, skipped, err := Sources(root, "audit_")
	assert.ErrorIs(t, err, ErrNoSources)
	assert.Len(t, skipped, 1)

	_, _, err = Sources(filepath.Join(root, "missing"), "audit_")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoSources)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "inspection_report.html", OutputName("/a/audit_1/inspection.csv", "_report.html"))
	assert.Equal(t, "x.v2_report.html", OutputName("x.v2.csv", "_report.html"))
}

func TestSourcesUnreadableFolder(t *testing.T) {
	root := t.TempDir()
	touch(t, filepath.Join(root, "audit_a", "a.csv"))
	touch(t, filepath.Join(root, "audit_b", "b.csv"))
	touch(t, filepath.Join(root, "audit_c", "c.csv"))

	denied := errors.New("permission denied")
	readDir = func(name string) ([]os.DirEntry, error) {
		if filepath.Base(name) == "audit_b" {
			return nil, denied
		}
		return os.ReadDir(name)
	}
	t.Cleanup(func() { readDir = os.ReadDir })

	sources, skipped, err := Sources(root, "audit_")
	require.NoError(t, err)
	assert.Empty(t, skipped)
	require.Len(t, sources, 3)
	assert.Equal(t, filepath.Join(root, "audit_a", "a.csv"), sources[0].CSV)
	assert.NoError(t, sources[0].Err)
	assert.Equal(t, filepath.Join(root, "audit_b"), sources[1].Folder)
	assert.ErrorIs(t, sources[1].Err, denied)
	assert.Empty(t, sources[1].CSV)
	assert.Equal(t, filepath.Join(root, "audit_c", "c.csv"), sources[2].CSV)
}
