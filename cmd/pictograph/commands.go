package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"

	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/manifest"
	"github.com/ankek/terraform-provider-pictograph/internal/symbol"
)

// newRenderCmd renders a single pictograph from flags
func newRenderCmd(a *app) *cobra.Command {
	var code, hostility, finiteness string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render one pictograph without the form",
		Long: `Render one pictograph from flags.

Example:
  pictograph render --code A1 --hostility safe --finiteness finite`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := a.generator().Generate(cmd.Context(), interfaces.GenerateConfig{
				Code:       code,
				Hostility:  hostility,
				Finiteness: finiteness,
				Options:    a.cfg.RenderOptions(),
			})
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), result.OutputPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&code, "code", "", "Annex code (file name stem)")
	cmd.Flags().StringVar(&hostility, "hostility", "", "safe, moderate or hazardous")
	cmd.Flags().StringVar(&finiteness, "finiteness", "", "infinite or finite")
	_ = cmd.MarkFlagRequired("code")
	_ = cmd.MarkFlagRequired("hostility")
	_ = cmd.MarkFlagRequired("finiteness")

	return cmd
}

// newBatchCmd renders every pictograph in an HCL manifest
func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [manifest]",
		Short: "Render every pictograph in an HCL manifest",
		Long: `Render every pictograph block of a manifest. The manifest may be a local file
or an http(s) URL.

Example manifest:
  output_dir = "symbols"

  pictograph "A1" {
    hostility  = "safe"
    finiteness = "finite"
  }

Entries that fail are reported together; the rest are still rendered.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			cfgs := m.Configs(a.cfg.RenderOptions())
			results, err := a.generator().GenerateBatch(cmd.Context(), cfgs)
			for _, res := range results {
				fmt.Fprintln(cmd.OutOrStdout(), res.OutputPath)
			}
			if err != nil {
				return fmt.Errorf("%d of %d pictographs failed: %w", len(multierr.Errors(err)), len(cfgs), err)
			}
			return nil
		},
	}
}

// styleOutput is the YAML shape printed by the style command
type styleOutput struct {
	Hostility string  `yaml:"hostility"`
	RingStyle string  `yaml:"ring_style"`
	Radius    float64 `yaml:"radius"`
	LineWidth float64 `yaml:"line_width"`
	Rings     int     `yaml:"rings"`
}

// newStyleCmd prints the descriptor a hostility class resolves to
func newStyleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "style [hostility]",
		Short: "Show the ring style for a hostility class",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := symbol.ParseHostility(args[0])
			if err != nil {
				return err
			}
			style, err := symbol.Resolve(h)
			if err != nil {
				return err
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			defer enc.Close()
			return enc.Encode(styleOutput{
				Hostility: string(h),
				RingStyle: string(style.RingStyle),
				Radius:    style.Radius,
				LineWidth: style.LineWidth,
				Rings:     len(style.Radii()),
			})
		},
	}
}

// newConfigCmd groups config file helpers
func newConfigCmd(a *app) *cobra.Command {
	var force bool

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the pictograph config file",
	}

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the effective settings to the config file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(a.configPath); err == nil && !force {
				return fmt.Errorf("%s already exists (use --force to overwrite)", a.configPath)
			} else if err != nil && !errors.Is(err, os.ErrNotExist) {
				return err
			}

			if err := a.cfg.Save(a.configPath); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", a.configPath)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(initCmd)
	return configCmd
}
