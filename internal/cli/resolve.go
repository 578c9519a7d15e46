package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jokarl/resbind/internal/config"
	"github.com/jokarl/resbind/internal/output"
	"github.com/jokarl/resbind/internal/resolver"
)

var (
	formatFlag string
	outputFlag string
	colorFlag  string
	strictFlag bool
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <name>...",
	Short: "Resolve field names against the catalog",
	Long: `Resolve each name against the resource catalog and print the bindings.

Recognized names are "image" and "text" (case-sensitive). Unrecognized
names are reported as "Error <name>". By default failures do not change
the exit status; use --strict to exit non-zero when any name fails.

Example:
  resbind resolve image text
  resbind resolve --format json image logo`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResolve,
}

func init() {
	rootCmd.AddCommand(resolveCmd)

	resolveCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json (default from config)")
	resolveCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write output to file instead of stdout")
	resolveCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never (default from config)")
	resolveCmd.Flags().BoolVar(&strictFlag, "strict", false, "Exit non-zero if any name fails to resolve")
}

func runResolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	formatName := cfg.Output.Format
	if formatFlag != "" {
		formatName = formatFlag
	}
	format, err := output.ParseFormat(formatName)
	if err != nil {
		return err
	}

	colorMode := cfg.Output.Color
	if colorFlag != "" {
		colorMode = colorFlag
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	report := resolver.New(cat, logger).ResolveAll(args)

	var writer io.Writer = cmd.OutOrStdout()
	colorEnabled := false
	if outputFlag != "" {
		f, err := os.Create(outputFlag)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		writer = f
		colorEnabled = shouldUseColor(f, colorMode)
	} else if f, ok := writer.(*os.File); ok {
		colorEnabled = shouldUseColor(f, colorMode)
	} else {
		colorEnabled = colorMode == "always"
	}

	renderer := output.NewRenderer(format, colorEnabled)
	if err := renderer.Render(writer, report); err != nil {
		return fmt.Errorf("failed to render output: %w", err)
	}

	if strictFlag && report.HasFailures() {
		return fmt.Errorf("%d of %d names failed to resolve", report.Summary.Failed, report.Summary.Total)
	}
	return nil
}

func shouldUseColor(f *os.File, mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		stat, err := f.Stat()
		if err != nil {
			return false
		}
		return (stat.Mode() & os.ModeCharDevice) != 0
	}
}
