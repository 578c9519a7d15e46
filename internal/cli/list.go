package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jokarl/resbind/internal/binding"
	"github.com/jokarl/resbind/internal/config"
	"github.com/jokarl/resbind/internal/types"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the fields selected by the configuration",
	Long: `Bind every field selected by the fields { include, exclude } patterns
of the configuration and print one binding per line.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	cat, err := cfg.BuildCatalog()
	if err != nil {
		return fmt.Errorf("failed to build catalog: %w", err)
	}

	var names []string
	for _, f := range types.Fields() {
		names = append(names, f.String())
	}
	selected, err := cfg.FieldFilter().Select(names)
	if err != nil {
		return fmt.Errorf("failed to select fields: %w", err)
	}
	logger.Debug("fields selected", "fields", selected)

	bound, err := binding.BindFields(cat, selected)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, line := range bound.Lines() {
		fmt.Fprintln(out, line)
	}
	return nil
}
