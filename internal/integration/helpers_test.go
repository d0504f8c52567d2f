package integration

import (
	"image"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ankek/terraform-provider-pictograph/internal/config"
	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
)

func generatorConfig(code, hostility, finiteness string, cfg *config.Config) interfaces.GenerateConfig {
	return interfaces.GenerateConfig{
		Code:       code,
		Hostility:  hostility,
		Finiteness: finiteness,
		Options:    cfg.RenderOptions(),
	}
}

func decode(t *testing.T, path string) image.Image {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	return img
}

func alpha(img image.Image, x, y int) uint32 {
	_, _, _, a := img.At(x, y).RGBA()
	return a >> 8
}

// countRuns counts inked stretches on row y between x0 and x1.
func countRuns(img image.Image, y, x0, x1 int) int {
	runs := 0
	inside := false
	for x := x0; x < x1; x++ {
		inked := alpha(img, x, y) > 128
		if inked && !inside {
			runs++
		}
		inside = inked
	}
	return runs
}

func hasInk(img image.Image, cx, cy, radius int) bool {
	for y := cy - radius; y <= cy+radius; y++ {
		for x := cx - radius; x <= cx+radius; x++ {
			if alpha(img, x, y) > 0 {
				return true
			}
		}
	}
	return false
}
