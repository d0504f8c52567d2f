package integration

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ankek/terraform-provider-pictograph/internal/config"
	"github.com/ankek/terraform-provider-pictograph/internal/generator"
	"github.com/ankek/terraform-provider-pictograph/internal/manifest"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

const testDPI = 100 // 500 px canvas

// TestFullPipeline runs a manifest through the generator and inspects the
// written images.
func TestFullPipeline(t *testing.T) {
	outDir := t.TempDir()
	manifestPath := filepath.Join(t.TempDir(), "pictographs.hcl")
	src := `
pictograph "A1" {
  hostility  = "safe"
  finiteness = "finite"
}

pictograph "M2" {
  hostility  = "Moderate"
  finiteness = "Finite"
}

pictograph "H9" {
  hostility  = "hazardous"
  finiteness = "infinite"
}
`
	require.NoError(t, os.WriteFile(manifestPath, []byte(src), 0644))

	m, err := manifest.Load(context.Background(), manifestPath)
	require.NoError(t, err)

	cfg := config.DefaultConfig()
	cfg.Output.Dir = outDir
	cfg.Output.DPI = testDPI

	core, logs := observer.New(zapcore.InfoLevel)
	gen := generator.New(generator.WithLogger(zap.New(core)))

	results, err := gen.GenerateBatch(context.Background(), m.Configs(cfg.RenderOptions()))
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, 3, logs.FilterMessage("pictograph saved").Len())

	tests := []struct {
		code      string
		wantStyle symbol.RingStyle
		wantRings int
	}{
		{"A1", symbol.RingDotted, 1},
		{"M2", symbol.RingSolid, 1},
		{"H9", symbol.RingDouble, 2},
	}

	for i, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			res := results[i]
			assert.Equal(t, tt.code, res.Request.Code)
			assert.Equal(t, tt.wantStyle, res.Style.RingStyle)
			assert.Equal(t, filepath.Join(outDir, tt.code+"_symbol.png"), res.OutputPath)

			img := decode(t, res.OutputPath)
			size := img.Bounds().Dx()
			require.Equal(t, 500, size)
			require.Equal(t, 500, img.Bounds().Dy())

			// Background stays transparent, including the ring centre
			assert.Zero(t, alpha(img, 0, 0))
			assert.Zero(t, alpha(img, size/2, size/2))

			assert.Equal(t, tt.wantRings, countRuns(img, size/2, size/2, size/2+size*27/100))

			// Glyph sits on the right edge at (0.8, 0.5)
			assert.True(t, hasInk(img, size*8/10, size/2, size/40), "no glyph ink")
		})
	}
}

func TestFullPipeline_InvalidHostilityWritesNothing(t *testing.T) {
	outDir := t.TempDir()
	gen := generator.New()

	cfg := config.DefaultConfig()
	cfg.Output.Dir = outDir

	_, err := gen.Generate(context.Background(), generatorConfig("X", "unknown", "finite", cfg))
	require.Error(t, err)
	assert.True(t, errors.Is(err, symbol.ErrInvalidHostility))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestFullPipeline_RerenderOverwrites(t *testing.T) {
	outDir := t.TempDir()
	gen := generator.New()

	cfg := config.DefaultConfig()
	cfg.Output.Dir = outDir
	cfg.Output.DPI = testDPI

	_, err := gen.Generate(context.Background(), generatorConfig("A1", "safe", "finite", cfg))
	require.NoError(t, err)
	res, err := gen.Generate(context.Background(), generatorConfig("A1", "hazardous", "infinite", cfg))
	require.NoError(t, err)

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	img := decode(t, res.OutputPath)
	size := img.Bounds().Dx()
	assert.Equal(t, 2, countRuns(img, size/2, size/2, size/2+size*27/100))
}

func TestFullPipeline_SVG(t *testing.T) {
	outDir := t.TempDir()
	gen := generator.New()

	cfg := config.DefaultConfig()
	cfg.Output.Dir = outDir
	cfg.Output.Format = "svg"

	res, err := gen.Generate(context.Background(), generatorConfig("H9", "hazardous", "infinite", cfg))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(outDir, "H9_symbol.svg"), res.OutputPath)

	data, err := os.ReadFile(res.OutputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}
