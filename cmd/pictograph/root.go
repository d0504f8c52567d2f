package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ankek/terraform-provider-pictograph/internal/config"
	"github.com/ankek/terraform-provider-pictograph/internal/form"
	"github.com/ankek/terraform-provider-pictograph/internal/generator"
	"github.com/ankek/terraform-provider-pictograph/internal/interfaces"
	"github.com/ankek/terraform-provider-pictograph/internal/logging"
)

// app carries flag values and the collaborators built in PersistentPreRunE.
type app struct {
	// Global flags
	configPath string
	verbose    bool
	outputDir  string
	format     string
	dpi        int
	opaque     bool
	caption    bool

	cfg    *config.Config
	logger *zap.Logger

	// collector replaces the terminal form when set
	collector interfaces.RequestCollector
}

func newRootCmd(a *app) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "pictograph",
		Short: "Render annex pictographs",
		Long: `pictograph draws the symbol for an annex: a ring whose style encodes hostility
(safe = dotted, moderate = solid, hazardous = double) and a glyph at its right
edge that encodes finiteness (infinite = triangle, finite = flat mark).

Run without arguments to fill in the interactive form. The image is saved as
<code>_symbol.png in the output directory.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
		RunE: a.runForm,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", config.DefaultPath, "Path to the YAML config file")
	flags.BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVarP(&a.outputDir, "output-dir", "o", "", "Directory to write pictographs into")
	flags.StringVar(&a.format, "format", "", "Output format: png or svg")
	flags.IntVar(&a.dpi, "dpi", 0, "Resolution in dots per inch")
	flags.BoolVar(&a.opaque, "opaque", false, "Fill the background white")
	flags.BoolVar(&a.caption, "caption", false, "Print the code under the rings")

	rootCmd.AddCommand(
		newRenderCmd(a),
		newBatchCmd(a),
		newStyleCmd(a),
		newConfigCmd(a),
	)

	return rootCmd
}

// setup loads the config, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("output-dir") {
		cfg.Output.Dir = a.outputDir
	}
	if flags.Changed("format") {
		cfg.Output.Format = a.format
	}
	if flags.Changed("dpi") {
		cfg.Output.DPI = a.dpi
	}
	if flags.Changed("opaque") {
		cfg.Output.Transparent = !a.opaque
	}
	if flags.Changed("caption") {
		cfg.Output.Caption = a.caption
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	a.cfg = cfg

	logger, err := logging.New(cfg.Logging, a.verbose)
	if err != nil {
		return err
	}
	a.logger = logger
	return nil
}

func (a *app) generator() *generator.Generator {
	return generator.New(generator.WithLogger(a.logger))
}

// runForm asks for a request interactively and renders it.
func (a *app) runForm(cmd *cobra.Command, args []string) error {
	collector := a.collector
	if collector == nil {
		collector = form.NewCollector(nil)
	}

	req, err := collector.Collect(cmd.Context())
	if errors.Is(err, form.ErrAborted) {
		fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
		return nil
	}
	if err != nil {
		return err
	}

	result, err := a.generator().Generate(cmd.Context(), interfaces.GenerateConfig{
		Code:       req.Code,
		Hostility:  string(req.Hostility),
		Finiteness: string(req.Finiteness),
		Options:    a.cfg.RenderOptions(),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Saved pictograph to %s\n", result.OutputPath)
	return nil
}
