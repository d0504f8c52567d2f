// Package generator turns raw user input into written pictographs.
// It is shared by the CLI, the batch manifest runner and the Terraform
// provider so that all of them validate, normalise and log the same way.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/renderer"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
	"github.com/ankek/terraform-provider-pictograph/internal/validation"
)

// ErrEmptyCode is returned when the annex code is blank after trimming.
var ErrEmptyCode = errors.New("annex code is required")

// Generator validates input, renders and reports pictographs.
type Generator struct {
	renderer  interfaces.PictographRenderer
	validator interfaces.PathValidator
	logger    *zap.Logger
}

var _ interfaces.PictographGenerator = (*Generator)(nil)

// Option configures a Generator.
type Option func(*Generator)

// WithRenderer replaces the renderer, mainly for tests.
func WithRenderer(r interfaces.PictographRenderer) Option {
	return func(g *Generator) { g.renderer = r }
}

// WithValidator replaces the path validator.
func WithValidator(v interfaces.PathValidator) Option {
	return func(g *Generator) { g.validator = v }
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) { g.logger = l }
}

// New creates a Generator backed by the real renderer and validator.
func New(opts ...Option) *Generator {
	g := &Generator{
		renderer:  renderer.Engine{},
		validator: validation.Validator{},
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.logger == nil {
		g.logger = zap.NewNop()
	}
	return g
}

// Generate renders one pictograph.
//
// It performs the following steps:
//  1. Trims the code and rejects it when empty or unsafe
//  2. Validates the output directory
//  3. Normalises hostility and finiteness (case-insensitive)
//  4. Renders and writes the file
func (g *Generator) Generate(ctx context.Context, cfg interfaces.GenerateConfig) (*interfaces.GenerateResult, error) {
	code := strings.TrimSpace(cfg.Code)
	if code == "" {
		return nil, ErrEmptyCode
	}
	if err := g.validator.ValidateCode(code); err != nil {
		return nil, err
	}

	opts := cfg.Options
	if opts.OutputDir == "" {
		opts.OutputDir = "."
	}
	if err := g.validator.ValidateOutputDir(opts.OutputDir); err != nil {
		return nil, fmt.Errorf("invalid output directory: %w", err)
	}

	req, err := symbol.NewRequest(code, cfg.Hostility, cfg.Finiteness)
	if err != nil {
		return nil, err
	}
	style, err := req.Validate()
	if err != nil {
		return nil, err
	}

	g.logger.Debug("rendering pictograph",
		zap.String("code", req.Code),
		zap.String("hostility", string(req.Hostility)),
		zap.String("finiteness", string(req.Finiteness)),
		zap.String("format", opts.Format),
	)

	path, err := g.renderer.Render(ctx, req, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to render pictograph %s: %w", req.Code, err)
	}

	g.logger.Info("pictograph saved",
		zap.String("code", req.Code),
		zap.String("path", path),
		zap.String("ring_style", string(style.RingStyle)),
	)

	return &interfaces.GenerateResult{
		OutputPath: path,
		Request:    req,
		Style:      style,
	}, nil
}

// GenerateBatch renders every entry in order. A failing entry does not stop
// the batch; all failures are returned together.
func (g *Generator) GenerateBatch(ctx context.Context, cfgs []interfaces.GenerateConfig) ([]*interfaces.GenerateResult, error) {
	var (
		results []*interfaces.GenerateResult
		errs    error
	)

	for _, cfg := range cfgs {
		if err := ctx.Err(); err != nil {
			errs = multierr.Append(errs, err)
			break
		}

		res, err := g.Generate(ctx, cfg)
		if err != nil {
			g.logger.Warn("pictograph failed", zap.String("code", cfg.Code), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", cfg.Code, err))
			continue
		}
		results = append(results, res)
	}

	g.logger.Info("batch complete",
		zap.Int("rendered", len(results)),
		zap.Int("failed", len(multierr.Errors(errs))),
	)

	return results, errs
}
