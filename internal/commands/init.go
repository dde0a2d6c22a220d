package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gastos-dev/gastos/internal/config"
	"github.com/gastos-dev/gastos/internal/store"
)

func newInitCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new gastos project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, owner)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "default owner for imports (required)")
	_ = cmd.MarkFlagRequired("owner")

	return cmd
}

func runInit(dir, owner string) error {
	cfg := config.Default(owner)

	if err := os.MkdirAll(filepath.Join(dir, cfg.Import.Dir), 0o755); err != nil {
		return fmt.Errorf("creating import dir: %w", err)
	}

	cfg.Store.Path = filepath.Join(dir, cfg.Store.Path)
	cfg.Import.Dir = filepath.Join(dir, cfg.Import.Dir)
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Create the database up front so the first import does not race schema
	// creation with anything else touching the file.
	st, err := store.Open(cfg.Store.Path)
	if err != nil {
		return fmt.Errorf("creating database: %w", err)
	}
	if err := st.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}

	fmt.Printf("Initialized gastos project at %s (owner %s)\n", dir, owner)
	return nil
}
