// Package interfaces defines interfaces for dependency injection and testing
package interfaces

import (
	"context"

	"github.com/ankek/terraform-provider-pictograph/internal/renderer"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// PictographRenderer draws a validated request and writes it to disk
type PictographRenderer interface {
	// Render writes the pictograph and returns the path of the written file
	Render(ctx context.Context, req symbol.Request, opts renderer.RenderOptions) (string, error)
}

// PathValidator defines the interface for validating output locations
type PathValidator interface {
	// ValidateOutputDir validates an output directory for security and accessibility
	ValidateOutputDir(dir string) error

	// ValidateCode rejects codes unusable as a file name stem
	ValidateCode(code string) error
}

// RequestCollector gathers a pictograph request from a user
type RequestCollector interface {
	// Collect returns a validated request or the reason none was produced
	Collect(ctx context.Context) (symbol.Request, error)
}

// PictographGenerator defines the interface for generating pictographs
type PictographGenerator interface {
	// Generate renders one pictograph from raw user input
	Generate(ctx context.Context, cfg GenerateConfig) (*GenerateResult, error)
}

// GenerateConfig contains all configuration needed to generate a pictograph
type GenerateConfig struct {
	Code       string
	Hostility  string
	Finiteness string
	Options    renderer.RenderOptions
}

// GenerateResult contains the results of pictograph generation
type GenerateResult struct {
	OutputPath string
	Request    symbol.Request
	Style      symbol.StyleDescriptor
}
