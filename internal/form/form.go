// Package form collects a pictograph request interactively. It is the only
// part of the program that talks to a terminal; everything it returns has
// already been normalised into a valid symbol.Request.
package form

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// ErrAborted is returned when the user interrupts the form.
var ErrAborted = errors.New("form aborted")

var (
	hostilityOptions  = []string{"Safe", "Moderate", "Hazardous"}
	finitenessOptions = []string{"Infinite", "Finite"}
)

// Collector asks for code, hostility and finiteness.
type Collector struct {
	driver PromptDriver
}

var _ interfaces.RequestCollector = (*Collector)(nil)

// NewCollector creates a Collector. A nil driver uses the survey terminal driver.
func NewCollector(driver PromptDriver) *Collector {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Collector{driver: driver}
}

// Collect runs the form and returns a validated request.
func (c *Collector) Collect(ctx context.Context) (symbol.Request, error) {
	code, err := c.driver.Input(ctx, InputConfig{
		Message:   "Annex Code:",
		Help:      "Used as the file name: <code>_symbol.png",
		Validator: requireCode,
	})
	if err != nil {
		return symbol.Request{}, err
	}
	code = strings.TrimSpace(code)
	if err := requireCode(code); err != nil {
		return symbol.Request{}, err
	}

	hostility, err := c.choose(ctx, SelectConfig{
		Message: "Hostility:",
		Options: hostilityOptions,
		Help:    "Safe draws a dotted ring, Moderate a solid ring, Hazardous a double ring",
	})
	if err != nil {
		return symbol.Request{}, err
	}

	finiteness, err := c.choose(ctx, SelectConfig{
		Message: "Finiteness:",
		Options: finitenessOptions,
		Help:    "Infinite draws a triangle, Finite a flat T mark",
	})
	if err != nil {
		return symbol.Request{}, err
	}

	return symbol.NewRequest(code, hostility, finiteness)
}

func (c *Collector) choose(ctx context.Context, cfg SelectConfig) (string, error) {
	idx, err := c.driver.Select(ctx, cfg)
	if err != nil {
		return "", err
	}
	if idx < 0 || idx >= len(cfg.Options) {
		return "", fmt.Errorf("%s no option selected", cfg.Message)
	}
	return cfg.Options[idx], nil
}

func requireCode(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("please enter an annex code")
	}
	return nil
}
