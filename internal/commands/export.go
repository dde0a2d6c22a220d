package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gastos-dev/gastos/internal/importer"
)

func newExportCommand() *cobra.Command {
	var owner string
	var month string
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export stored expenses as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, owner, month, out)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner to export (defaults to config default_owner)")
	cmd.Flags().StringVar(&month, "month", "", "restrict to one month (YYYY-MM)")
	cmd.Flags().StringVarP(&out, "output", "o", "", "output file (default stdout)")

	return cmd
}

func runExport(cmd *cobra.Command, owner, month, out string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	owner, err = resolveOwner(owner, cfg)
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	expenses, err := st.ListByOwner(owner, month)
	if err != nil {
		return err
	}

	w := os.Stdout
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return fmt.Errorf("creating %s: %w", out, err)
		}
		defer f.Close()
		w = f
	}

	if err := importer.WriteExpenses(w, expenses); err != nil {
		return fmt.Errorf("writing export: %w", err)
	}
	if out != "" {
		fmt.Printf("Exported %d expenses to %s\n", len(expenses), out)
	}
	return nil
}
