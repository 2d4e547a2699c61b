package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ramptone/ramptone/internal/export"
	"github.com/ramptone/ramptone/internal/ramp"
)

func newGenerateCmd() *cobra.Command {
	var (
		configPath string
		baseColor  string
		colorID    string
		method     string
		background string
		outputs    []string
		outputDir  string
		bundlePath string
		plugins    []string
		dryRun     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate colour ramps and export them as design tokens",
		Long: `Generate colour ramps from a config file or a single base colour, and
export them with one or more exporters.

Exporters:
  css   - CSS custom properties (--<id>-<stop> variables)
  json  - Design-token JSON
  csv   - CSV rows

Examples:
  # Everything defined in a config file, all exporters
  ramptone generate --config ramps.toml

  # Single ramp from flags, CSS only
  ramptone generate --base "#3366FF" --id brand --outputs css

  # Contrast-driven ramp against a dark background
  ramptone generate --base "#3366FF" --method contrast --background "#111111"

  # Write a distributable token bundle
  ramptone generate --config ramps.toml --bundle tokens.tar.xz

  # Render through an external exporter plugin
  ramptone generate --config ramps.toml --plugin ./ramptone-exporter-scss

  # Preview the files without writing anything
  ramptone generate --config ramps.toml --dry-run`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			results, err := resolveResults(configPath, baseColor, colorID, method, background)
			if err != nil {
				return err
			}
			logger.Debug("generated ramps", "count", len(results))

			for _, result := range results {
				if result.HadDuplicates {
					logger.Warn("ramp needed nudging to keep stops distinct", "colour", result.ColorID)
				}
				for _, stop := range result.Stops {
					if stop.TooSimilar {
						logger.Warn("stops remain perceptually close",
							"colour", result.ColorID, "stop", stop.StopNumber, "deltaE", stop.DeltaE)
					}
				}
			}

			registry := export.NewRegistry()
			exporters, err := registry.Resolve(outputs)
			if err != nil {
				return err
			}
			for _, path := range plugins {
				exporters = append(exporters, export.NewExternal(path, logger))
			}

			files := make(map[string][]byte)
			for _, exporter := range exporters {
				logger.Debug("running exporter", "name", exporter.Name())
				out, err := exporter.Export(results)
				if err != nil {
					return fmt.Errorf("exporter %s failed: %w", exporter.Name(), err)
				}
				for name, content := range out {
					files[name] = content
				}
			}

			if dryRun {
				for name, content := range files {
					fmt.Fprintf(cmd.OutOrStdout(), "%s (%d bytes)\n", name, len(content))
				}
				return nil
			}

			if bundlePath != "" {
				return writeBundle(bundlePath, files, logger)
			}
			return writeFiles(outputDir, files, logger)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Ramp-set config file (.toml or .json)")
	cmd.Flags().StringVar(&baseColor, "base", "", "Base colour hex for a single ramp (alternative to --config)")
	cmd.Flags().StringVar(&colorID, "id", "colour", "Colour ID for the single-ramp form")
	cmd.Flags().StringVar(&method, "method", "lightness", "Emphasis method (lightness or contrast)")
	cmd.Flags().StringVar(&background, "background", "", "Background colour hex (default white)")
	cmd.Flags().StringSliceVarP(&outputs, "outputs", "o", []string{"all"}, "Exporters (comma-separated or 'all')")
	cmd.Flags().StringVar(&outputDir, "output-dir", ".", "Output directory")
	cmd.Flags().StringVar(&bundlePath, "bundle", "", "Write a .tar.xz token bundle instead of loose files")
	cmd.Flags().StringSliceVar(&plugins, "plugin", nil, "External exporter plugin binaries (repeatable)")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "List output files without writing them")

	return cmd
}

// resolveResults produces ramps either from a config file or from the
// single-ramp flag form.
func resolveResults(configPath, baseColor, colorID, method, background string) ([]ramp.Result, error) {
	if configPath != "" {
		cfg, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		results := make([]ramp.Result, 0, len(cfg.Colors))
		for _, c := range cfg.Colors {
			rampCfg, stops := c.ToRamp(cfg.Background)
			results = append(results, ramp.Generate(c.ID, rampCfg, stops))
		}
		return results, nil
	}

	if baseColor == "" {
		return nil, fmt.Errorf("either --config or --base is required")
	}

	cfg := ramp.Config{
		BaseColor:  baseColor,
		Method:     ramp.Method(method),
		Background: background,
	}
	return []ramp.Result{ramp.Generate(colorID, cfg, ramp.DefaultStops())}, nil
}

func writeFiles(dir string, files map[string][]byte, logger interface{ Info(string, ...any) }) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, content, 0o644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		logger.Info("wrote", "file", path, "bytes", len(content))
	}
	return nil
}

func writeBundle(path string, files map[string][]byte, logger interface{ Info(string, ...any) }) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create bundle: %w", err)
	}
	defer f.Close()

	if err := export.WriteBundle(f, files); err != nil {
		return err
	}
	logger.Info("wrote bundle", "file", path, "entries", len(files))
	return nil
}
