package cli

import (
	"fmt"
	"image/png"
	"math"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ramptone/ramptone/internal/colour"
	"github.com/ramptone/ramptone/internal/ramp"
	"github.com/ramptone/ramptone/internal/swatch"
)

func newPreviewCmd() *cobra.Command {
	var (
		configPath string
		baseColor  string
		colorID    string
		method     string
		background string
		pngPath    string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview colour ramps in the terminal",
		Long: `Preview colour ramps as truecolor swatches in the terminal, or render
them to a PNG swatch sheet with --png.

Examples:
  ramptone preview --base "#3366FF"
  ramptone preview --config ramps.toml
  ramptone preview --config ramps.toml --png swatches.png`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			results, err := resolveResults(configPath, baseColor, colorID, method, background)
			if err != nil {
				return err
			}

			if pngPath != "" {
				f, err := os.Create(pngPath)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", pngPath, err)
				}
				defer f.Close()
				if err := png.Encode(f, swatch.Render(results)); err != nil {
					return fmt.Errorf("failed to encode PNG: %w", err)
				}
				logger.Info("wrote swatch sheet", "file", pngPath)
				return nil
			}

			width := terminalWidth()
			for _, result := range results {
				printRamp(cmd, result, width)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Ramp-set config file (.toml or .json)")
	cmd.Flags().StringVar(&baseColor, "base", "", "Base colour hex for a single ramp (alternative to --config)")
	cmd.Flags().StringVar(&colorID, "id", "colour", "Colour ID for the single-ramp form")
	cmd.Flags().StringVar(&method, "method", "lightness", "Emphasis method (lightness or contrast)")
	cmd.Flags().StringVar(&background, "background", "", "Background colour hex (default white)")
	cmd.Flags().StringVar(&pngPath, "png", "", "Render to a PNG swatch sheet instead of the terminal")

	return cmd
}

// printRamp writes one ramp as a titled block of swatch rows, sized to fit
// the terminal.
func printRamp(cmd *cobra.Command, result ramp.Result, width int) {
	out := cmd.OutOrStdout()

	title := color.New(color.Bold)
	title.Fprintln(out, result.ColorID)

	// One column per stop, at least wide enough for "950 #RRGGBB".
	swatchWidth := width/len(result.Stops) - 1
	if swatchWidth < 12 {
		swatchWidth = 12
	}

	tbl := NewTable()
	tbl.SetMinColumnWidth(swatchWidth)
	tbl.AddRow(stopCells(result, swatchWidth, func(s ramp.GeneratedStop) string {
		return fmt.Sprintf("%d", s.StopNumber)
	}))
	tbl.AddRow(stopCells(result, swatchWidth, func(s ramp.GeneratedStop) string {
		return s.Hex
	}))
	fmt.Fprint(out, tbl.Render())

	for _, stop := range result.Stops {
		fmt.Fprint(out, swatchCell(stop.Hex, swatchWidth), " ")
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out)
}

func stopCells(result ramp.Result, width int, f func(ramp.GeneratedStop) string) []string {
	cells := make([]string, 0, len(result.Stops))
	for _, stop := range result.Stops {
		cell := f(stop)
		if len(cell) > width {
			cell = cell[:width]
		}
		cells = append(cells, cell)
	}
	return cells
}

// swatchCell returns a truecolor background block for the given hex.
func swatchCell(hex string, width int) string {
	rgb := colour.ParseHex(hex).RGB()
	r := int(math.Round(rgb.R * 255))
	g := int(math.Round(rgb.G * 255))
	b := int(math.Round(rgb.B * 255))
	return fmt.Sprintf("\x1b[48;2;%d;%d;%dm%s\x1b[0m", r, g, b, strings.Repeat(" ", width))
}

func terminalWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
			return w
		}
	}
	return 132
}
