package renderer

import (
	"context"
	"fmt"
)

// ExportPictograph encodes a scene in the requested format and writes it to
// outputPath. Write errors are returned as reported by the file system.
func ExportPictograph(ctx context.Context, scene Scene, outputPath string, opts RenderOptions) error {
	opts = opts.withDefaults()

	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	var (
		data []byte
		err  error
	)

	switch opts.Format {
	case "png":
		data, err = NewPNGRenderer(opts).Render(scene)
		if err != nil {
			return fmt.Errorf("failed to generate PNG: %w", err)
		}
	case "svg":
		data, err = NewSVGRenderer(opts).Render(scene)
		if err != nil {
			return fmt.Errorf("failed to generate SVG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported format: %s (use png or svg)", opts.Format)
	}

	return writeFile(outputPath, data)
}
