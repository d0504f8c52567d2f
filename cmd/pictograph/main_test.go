package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ankek/terraform-provider-pictograph/internal/form"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
	"github.com/ankek/terraform-provider-pictograph/internal/validation"
)

type fakeCollector struct {
	req symbol.Request
	err error
}

func (c *fakeCollector) Collect(ctx context.Context) (symbol.Request, error) {
	return c.req, c.err
}

// execute runs the CLI with a config path that does not exist, so only
// defaults and flags apply.
func execute(t *testing.T, a *app, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("PICTOGRAPH_OUTPUT_DIR", "")
	t.Setenv("PICTOGRAPH_FORMAT", "")
	t.Setenv("PICTOGRAPH_LOG_LEVEL", "")

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(a)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)

	cfgPath := filepath.Join(t.TempDir(), "pictograph.yaml")
	cmd.SetArgs(append([]string{"--config", cfgPath, "--dpi", "72"}, args...))

	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRenderCmd(t *testing.T) {
	dir := t.TempDir()

	out, _, err := execute(t, &app{}, "-o", dir, "render", "--code", "A1", "--hostility", "Safe", "--finiteness", "finite")
	require.NoError(t, err)

	want := filepath.Join(dir, "A1_symbol.png")
	assert.Equal(t, want, strings.TrimSpace(out))
	assert.FileExists(t, want)
}

func TestRenderCmd_SVG(t *testing.T) {
	dir := t.TempDir()

	_, _, err := execute(t, &app{}, "-o", dir, "--format", "svg", "render", "--code", "H9", "--hostility", "hazardous", "--finiteness", "infinite")
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "H9_symbol.svg"))
}

func TestRenderCmd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "unknown hostility",
			args:    []string{"render", "--code", "X", "--hostility", "unknown", "--finiteness", "finite"},
			wantErr: symbol.ErrInvalidHostility,
		},
		{
			name:    "unknown finiteness",
			args:    []string{"render", "--code", "X", "--hostility", "safe", "--finiteness", "endless"},
			wantErr: symbol.ErrInvalidFiniteness,
		},
		{
			name:    "unsafe code",
			args:    []string{"render", "--code", "../X", "--hostility", "safe", "--finiteness", "finite"},
			wantErr: validation.ErrUnsafeCode,
		},
		{
			name:    "missing flag",
			args:    []string{"render", "--code", "X"},
			wantMsg: "required flag",
		},
		{
			name:    "dpi out of range",
			args:    []string{"--dpi", "200000", "render", "--code", "X", "--hostility", "safe", "--finiteness", "finite"},
			wantMsg: "dpi must be between",
		},
		{
			name:    "unsupported format",
			args:    []string{"--format", "gif", "render", "--code", "X", "--hostility", "safe", "--finiteness", "finite"},
			wantMsg: "invalid output format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			_, _, err := execute(t, &app{}, append([]string{"-o", dir}, tt.args...)...)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}

			entries, err := os.ReadDir(dir)
			require.NoError(t, err)
			assert.Empty(t, entries)
		})
	}
}

func TestBatchCmd(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(t.TempDir(), "pictographs.hcl")
	src := `
pictograph "A1" {
  hostility  = "safe"
  finiteness = "finite"
}

pictograph "H9" {
  hostility  = "hazardous"
  finiteness = "infinite"
}
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(src), 0644))

	out, _, err := execute(t, &app{}, "-o", dir, "batch", manifestPath)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, []string{
		filepath.Join(dir, "A1_symbol.png"),
		filepath.Join(dir, "H9_symbol.png"),
	}, lines)
}

func TestBatchCmd_PartialFailure(t *testing.T) {
	dir := t.TempDir()
	manifestPath := filepath.Join(t.TempDir(), "pictographs.hcl")
	src := `
pictograph "a/b" {
  hostility  = "safe"
  finiteness = "finite"
}

pictograph "M2" {
  hostility  = "moderate"
  finiteness = "finite"
}
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(src), 0644))

	out, _, err := execute(t, &app{}, "-o", dir, "batch", manifestPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2 pictographs failed")
	assert.True(t, errors.Is(err, validation.ErrUnsafeCode))

	assert.Equal(t, filepath.Join(dir, "M2_symbol.png"), strings.TrimSpace(out))
	assert.FileExists(t, filepath.Join(dir, "M2_symbol.png"))
}

func TestStyleCmd(t *testing.T) {
	out, _, err := execute(t, &app{}, "style", "Hazardous")
	require.NoError(t, err)

	assert.Contains(t, out, "hostility: hazardous")
	assert.Contains(t, out, "ring_style: double")
	assert.Contains(t, out, "line_width: 2")
	assert.Contains(t, out, "rings: 2")

	_, _, err = execute(t, &app{}, "style", "unknown")
	assert.True(t, errors.Is(err, symbol.ErrInvalidHostility))
}

func TestRootCmd_Form(t *testing.T) {
	dir := t.TempDir()
	a := &app{collector: &fakeCollector{req: symbol.Request{
		Code:       "A1",
		Hostility:  symbol.HostilityModerate,
		Finiteness: symbol.FinitenessInfinite,
	}}}

	out, _, err := execute(t, a, "-o", dir)
	require.NoError(t, err)

	assert.Contains(t, out, "Saved pictograph to "+filepath.Join(dir, "A1_symbol.png"))
	assert.FileExists(t, filepath.Join(dir, "A1_symbol.png"))
}

func TestRootCmd_FormAborted(t *testing.T) {
	dir := t.TempDir()
	a := &app{collector: &fakeCollector{err: form.ErrAborted}}

	out, errOut, err := execute(t, a, "-o", dir)
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Aborted.")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestConfigInitCmd(t *testing.T) {
	t.Setenv("PICTOGRAPH_OUTPUT_DIR", "")
	t.Setenv("PICTOGRAPH_FORMAT", "")
	t.Setenv("PICTOGRAPH_LOG_LEVEL", "")

	cfgPath := filepath.Join(t.TempDir(), "pictograph.yaml")
	run := func(args ...string) error {
		cmd := newRootCmd(&app{})
		cmd.SetOut(&bytes.Buffer{})
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs(append([]string{"--config", cfgPath}, args...))
		return cmd.Execute()
	}

	require.NoError(t, run("--format", "svg", "config", "init"))
	data, err := os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: svg")

	err = run("config", "init")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, run("--format", "png", "config", "init", "--force"))
	data, err = os.ReadFile(cfgPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "format: png")
}
