// Package renderer draws annex pictographs: concentric rings encoding the
// hostility class and an annotation glyph encoding finiteness. It supports PNG
// (default) and SVG output and writes one file per pictograph.
package renderer

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
	"github.com/ankek/terraform-provider-pictograph/internal/validation"
)

const (
	DefaultDPI        = 300
	DefaultSizeInches = 5.0
	DefaultColor      = "#000000"

	// DPI bounds accepted from configuration
	MinDPI = 36
	MaxDPI = 2400
)

// RenderOptions contains configuration for rendering
type RenderOptions struct {
	Format     string  // "png" (default) or "svg"
	OutputDir  string  // directory for the output file, working directory when empty
	DPI        int     // pixels per inch, default 300
	SizeInches float64 // canvas edge length, default 5
	Color      string  // hex ink color, default black
	Opaque     bool    // fill the background white instead of leaving it transparent
	Caption    bool    // print the code under the rings
}

// Scene is everything needed to draw one pictograph.
type Scene struct {
	Style      symbol.StyleDescriptor
	Finiteness symbol.Finiteness
	Caption    string
}

func (o RenderOptions) withDefaults() RenderOptions {
	o.Format = strings.ToLower(o.Format)
	if o.Format == "" {
		o.Format = "png"
	}
	if o.DPI <= 0 {
		o.DPI = DefaultDPI
	}
	if o.SizeInches <= 0 {
		o.SizeInches = DefaultSizeInches
	}
	if o.Color == "" {
		o.Color = DefaultColor
	}
	return o
}

// pixelSize is the canvas edge length in pixels.
func (o RenderOptions) pixelSize() int {
	return int(o.SizeInches*float64(o.DPI) + 0.5)
}

// unitsPerPoint converts typographic points into unit-square coordinates.
func (o RenderOptions) unitsPerPoint() float64 {
	return 1 / (72 * o.SizeInches)
}

// OutputFileName returns the file name used for a pictograph code.
func OutputFileName(code, format string) string {
	format = strings.ToLower(format)
	if format == "" {
		format = "png"
	}
	return fmt.Sprintf("%s_symbol.%s", code, format)
}

// RenderPictograph validates the request, draws the pictograph and writes it
// to {code}_symbol.{format} in opts.OutputDir, replacing any existing file.
// It returns the path written.
func RenderPictograph(ctx context.Context, req symbol.Request, opts RenderOptions) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	style, err := req.Validate()
	if err != nil {
		return "", err
	}

	if err := validation.ValidateCode(req.Code); err != nil {
		return "", err
	}

	opts = opts.withDefaults()

	scene := Scene{
		Style:      style,
		Finiteness: req.Finiteness,
	}
	if opts.Caption {
		scene.Caption = truncate(req.Code, maxCaptionLen)
	}

	outputPath := filepath.Join(opts.OutputDir, OutputFileName(req.Code, opts.Format))
	if err := ExportPictograph(ctx, scene, outputPath, opts); err != nil {
		return "", err
	}

	return outputPath, nil
}

// Engine exposes RenderPictograph as a method so it can be swapped in tests.
type Engine struct{}

func (Engine) Render(ctx context.Context, req symbol.Request, opts RenderOptions) (string, error) {
	return RenderPictograph(ctx, req, opts)
}
