// Package cli provides the command-line interface for ramptone.
package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ramptone/ramptone/internal/version"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ramptone",
		Short: "A design-token colour ramp generator",
		Long: `Ramptone generates multi-stop colour ramps (50..950) from base colours,
for use as design tokens.

Each stop is derived in a perceptually uniform colour space from the base
colour, a target lightness or WCAG contrast ratio, optional artistic hue and
chroma curves, and optional perceptual corrections. Ramps export as CSS
custom properties, design-token JSON, or CSV, and can be bundled for
distribution.`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	root.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	root.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")
	root.SetVersionTemplate(version.String() + "\n")

	// Accept underscore-spelled flags (--output_dir) as their dashed forms.
	root.SetGlobalNormalizationFunc(func(f *pflag.FlagSet, name string) pflag.NormalizedName {
		return pflag.NormalizedName(strings.ReplaceAll(name, "_", "-"))
	})

	root.AddCommand(newVersionCmd())
	root.AddCommand(newGenerateCmd())
	root.AddCommand(newPreviewCmd())
	root.AddCommand(newSuggestCmd())

	return root
}

// Execute runs the CLI. Called by main.main().
func Execute() {
	// Best effort; a missing .env is not an error.
	_ = godotenv.Load()

	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the command's logger from the global verbosity flags.
func newLogger(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	level := hclog.Info
	if verbose {
		level = hclog.Debug
	}
	if quiet {
		level = hclog.Error
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   "ramptone",
		Output: os.Stderr,
		Level:  level,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version.String())
		},
	}
}
