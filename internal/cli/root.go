package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/resbind/internal/binding"
	"github.com/jokarl/resbind/internal/config"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

// Global flags
var (
	configFlag  string
	verboseFlag bool
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "resbind",
	Short: "Bind consumer fields to resource identifiers",
	Long: `resbind binds the named fields of a consumer ("image", "text") to the
resource identifiers held in a resource catalog.

Run without a command to bind both fields and print the results.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(verboseFlag)
		return nil
	},
	RunE: runBind,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to configuration file (default: ./"+config.FileName+")")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// runBind binds the image and text fields and prints them. A binding
// failure is reported on stdout and does not change the exit status.
func runBind(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded", "path", cfg.ConfigPath())

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	out := cmd.OutOrStdout()
	ui, err := binding.Bind(cat)
	if err != nil {
		logger.Debug("binding failed", "error", err)
		fmt.Fprintln(out, err.Error())
		return nil
	}

	for _, line := range ui.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
