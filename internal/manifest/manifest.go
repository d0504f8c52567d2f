// Package manifest reads batch pictograph definitions written in HCL:
//
//	output_dir = "out"
//	format     = "png"
//
//	pictograph "A1" {
//	  hostility  = "safe"
//	  finiteness = "finite"
//	}
//
// Manifests can be read from a local file or fetched over HTTP(S).
package manifest

import (
	"errors"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/renderer"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// ErrDuplicateCode is returned when two blocks share a code and would
// overwrite each other's file.
var ErrDuplicateCode = errors.New("duplicate pictograph code")

// Manifest is a parsed batch definition.
type Manifest struct {
	OutputDir string
	Format    string
	Entries   []Entry
}

// Entry is one pictograph block.
type Entry struct {
	Code       string
	Hostility  symbol.Hostility
	Finiteness symbol.Finiteness
	Range      hcl.Range
}

var rootSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "output_dir"},
		{Name: "format"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{
			Type:       "pictograph",
			LabelNames: []string{"code"},
		},
	},
}

var entrySchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "hostility", Required: true},
		{Name: "finiteness", Required: true},
	},
}

// Parse parses manifest source. filename is used in error messages only.
func Parse(src []byte, filename string) (*Manifest, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("HCL parse errors: %s", diags.Error())
	}

	content, diags := file.Body.Content(rootSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse manifest body: %s", diags.Error())
	}

	var (
		m   = &Manifest{}
		err error
	)
	if attr, ok := content.Attributes["output_dir"]; ok {
		if m.OutputDir, err = stringAttr(attr); err != nil {
			return nil, err
		}
	}
	if attr, ok := content.Attributes["format"]; ok {
		if m.Format, err = stringAttr(attr); err != nil {
			return nil, err
		}
	}

	seen := make(map[string]hcl.Range)
	for _, block := range content.Blocks {
		entry, err := parseEntry(block)
		if err != nil {
			return nil, err
		}
		if prev, dup := seen[entry.Code]; dup {
			return nil, fmt.Errorf("%s: %w %q, first defined at %s", block.DefRange, ErrDuplicateCode, entry.Code, prev)
		}
		seen[entry.Code] = block.DefRange
		m.Entries = append(m.Entries, entry)
	}

	return m, nil
}

func parseEntry(block *hcl.Block) (Entry, error) {
	code := block.Labels[0]
	if code == "" {
		return Entry{}, fmt.Errorf("%s: pictograph code cannot be empty", block.DefRange)
	}

	content, diags := block.Body.Content(entrySchema)
	if diags.HasErrors() {
		return Entry{}, fmt.Errorf("pictograph %q: %s", code, diags.Error())
	}

	rawHostility, err := stringAttr(content.Attributes["hostility"])
	if err != nil {
		return Entry{}, err
	}
	hostility, err := symbol.ParseHostility(rawHostility)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: pictograph %q: %w", content.Attributes["hostility"].Range, code, err)
	}

	rawFiniteness, err := stringAttr(content.Attributes["finiteness"])
	if err != nil {
		return Entry{}, err
	}
	finiteness, err := symbol.ParseFiniteness(rawFiniteness)
	if err != nil {
		return Entry{}, fmt.Errorf("%s: pictograph %q: %w", content.Attributes["finiteness"].Range, code, err)
	}

	return Entry{
		Code:       code,
		Hostility:  hostility,
		Finiteness: finiteness,
		Range:      block.DefRange,
	}, nil
}

// stringAttr evaluates a literal attribute that must be a string
func stringAttr(attr *hcl.Attribute) (string, error) {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return "", fmt.Errorf("%s: %s", attr.Range, diags.Error())
	}
	if val.IsNull() || !val.Type().Equals(cty.String) {
		return "", fmt.Errorf("%s: %s must be a string", attr.Range, attr.Name)
	}
	return val.AsString(), nil
}

// Configs turns the manifest into generator input. Manifest-level
// output_dir and format override the base options.
func (m *Manifest) Configs(base renderer.RenderOptions) []interfaces.GenerateConfig {
	opts := base
	if m.OutputDir != "" {
		opts.OutputDir = m.OutputDir
	}
	if m.Format != "" {
		opts.Format = m.Format
	}

	cfgs := make([]interfaces.GenerateConfig, 0, len(m.Entries))
	for _, e := range m.Entries {
		cfgs = append(cfgs, interfaces.GenerateConfig{
			Code:       e.Code,
			Hostility:  string(e.Hostility),
			Finiteness: string(e.Finiteness),
			Options:    opts,
		})
	}
	return cfgs
}
