package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gastos-dev/gastos/internal/category"
	"github.com/gastos-dev/gastos/internal/importer"
	"github.com/gastos-dev/gastos/internal/logger"
	"github.com/gastos-dev/gastos/internal/store"
)

func newImportCommand() *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Import a CSV of expenses, or every CSV in the import directory",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runImport(cmd, file, owner)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner for imported expenses (defaults to config default_owner)")

	return cmd
}

func runImport(cmd *cobra.Command, file, owner string) error {
	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	owner, err = resolveOwner(owner, cfg)
	if err != nil {
		return err
	}

	rules := cfg.Rules()
	log := logger.New()

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	if file != "" {
		return importFile(log, st, rules, file, owner)
	}

	// No file argument: drain the import directory, moving each file to
	// processed/ once it has been handled.
	files, err := importer.Scan(cfg.Import.Dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Printf("No CSV files in %s\n", cfg.Import.Dir)
		return nil
	}

	for _, f := range files {
		if err := importFile(log, st, rules, f.Path, owner); err != nil {
			return err
		}
		if err := importer.MarkProcessed(cfg.Import.Dir, f.Name); err != nil {
			return err
		}
	}
	return nil
}

func importFile(log zerolog.Logger, st *store.Store, rules *category.RuleSet, path, owner string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	report, readErr := importer.ImportCSV(f, owner, rules)
	printReport(filepath.Base(path), report)
	if readErr != nil {
		return fmt.Errorf("importing %s: %w", path, readErr)
	}

	// Accepted rows are stored even when some rows failed: partial success
	// is not total failure.
	if len(report.Expenses) > 0 {
		ids, err := st.BulkInsert(report.Expenses)
		if err != nil {
			return fmt.Errorf("storing expenses from %s: %w", path, err)
		}
		log.Info().
			Str("file", filepath.Base(path)).
			Str("owner", owner).
			Int("stored", len(ids)).
			Int("skipped", report.Skipped).
			Msg("import finished")
	}
	return nil
}

// printReport shows the counts and the literal per-row error list, whatever
// the overall outcome.
func printReport(name string, report importer.Report) {
	fmt.Printf("%s: %d processed, %d skipped, %d errors\n",
		name, report.Processed, report.Skipped, len(report.Errors))
	for _, e := range report.Errors {
		fmt.Printf("  %s\n", e.Error())
	}
}
