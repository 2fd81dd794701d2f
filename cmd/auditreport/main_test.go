package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"audit-report/internal/discover"
	"audit-report/internal/model"
)

const export = "audit_title,Dock 4\n" +
	"ID,Type,Label,Primary,Secondary,Note,Media\n" +
	"s1,section,Loading,,,,\n" +
	"i1,item,Ramp,opt1|OK,,,\n" +
	"i2,item,Light curtain,opt2|Non-compliant,,,\n"

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() {
		cfgPath, verbose = "", false
		watchMode, ciMode, maxNonCompliant = false, false, -1
		renderOut, renderImages, renderLogo = "", "", ""
	})
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func setup(t *testing.T) (in, out, cfgFile string) {
	t.Helper()
	in, out = t.TempDir(), t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(in, "audit_dock"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(in, "audit_dock", "dock.csv"), []byte(export), 0o644))
	cfgFile = filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output_dir: "+out+"\ntimezone: UTC\nhistory: false\nlog:\n  level: error\n"), 0o644))
	return in, out, cfgFile
}

func TestGenerateCommand(t *testing.T) {
	in, out, cfgFile := setup(t)

	stdout, err := execute(t, "generate", in, "--config", cfgFile, "--ci")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "dock_report.html"))

	var sum model.RunSummary
	require.NoError(t, json.Unmarshal(bytes.TrimSpace([]byte(stdout)), &sum))
	assert.Equal(t, "dock.csv", sum.Source)
	assert.Equal(t, 1, sum.Counts.NonCompliant)
}

func TestGenerateCommandPolicy(t *testing.T) {
	in, _, cfgFile := setup(t)

	_, err := execute(t, "generate", in, "--config", cfgFile, "--max-noncompliant", "0")
	var ee *exitError
	require.True(t, errors.As(err, &ee))
	assert.Equal(t, 2, ee.code)
}

func TestGenerateCommandNoSources(t *testing.T) {
	_, _, cfgFile := setup(t)
	_, err := execute(t, "generate", t.TempDir(), "--config", cfgFile)
	assert.ErrorIs(t, err, discover.ErrNoSources)
}

func TestRenderCommand(t *testing.T) {
	in, out, cfgFile := setup(t)
	dst := filepath.Join(out, "custom.html")

	stdout, err := execute(t, "render", filepath.Join(in, "audit_dock", "dock.csv"), "--config", cfgFile, "-o", dst)
	require.NoError(t, err)
	assert.FileExists(t, dst)
	assert.Contains(t, stdout, "dock.csv -> custom.html")
	assert.Contains(t, stdout, "Non-compliant 1")
}

func TestRenderCommandCreatesOutputDir(t *testing.T) {
	in, _, _ := setup(t)
	out := filepath.Join(t.TempDir(), "not", "yet")
	cfgFile := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("output_dir: "+out+"\ntimezone: UTC\nhistory: false\n"), 0o644))

	_, err := execute(t, "render", filepath.Join(in, "audit_dock", "dock.csv"), "--config", cfgFile)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(out, "dock_report.html"))
}
