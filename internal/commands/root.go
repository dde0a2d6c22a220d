// Package commands wires the CLI surface together: config, rule set, store
// and the import/export pipeline.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gastos-dev/gastos/internal/buildinfo"
	"github.com/gastos-dev/gastos/internal/config"
	"github.com/gastos-dev/gastos/internal/store"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "gastos",
		Short:   "CSV expense tracking",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", config.FileName, "path to gastos.yaml")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newImportCommand())
	rootCmd.AddCommand(newExportCommand())
	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newSummaryCommand())
	rootCmd.AddCommand(newCategoriesCommand())

	return rootCmd
}

// loadConfig reads the config named by the command's --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// openStore opens the expense database named by the config.
func openStore(cfg *config.Config) (*store.Store, error) {
	return store.Open(cfg.Store.Path)
}

// resolveOwner picks the --owner flag when set, else the config default.
func resolveOwner(owner string, cfg *config.Config) (string, error) {
	if owner != "" {
		return owner, nil
	}
	if cfg.Import.DefaultOwner != "" {
		return cfg.Import.DefaultOwner, nil
	}
	return "", fmt.Errorf("no owner given and no default_owner in config")
}
