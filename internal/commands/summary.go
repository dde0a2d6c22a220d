package commands

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func newSummaryCommand() *cobra.Command {
	var owner string
	var month string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show per-category totals for a month",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, owner, month)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner to summarize (defaults to config default_owner)")
	cmd.Flags().StringVar(&month, "month", "", "month to summarize (YYYY-MM, default all)")

	return cmd
}

func runSummary(cmd *cobra.Command, owner, month string) error {
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

	summary, err := st.Summarize(owner, month)
	if err != nil {
		return err
	}

	scope := month
	if scope == "" {
		scope = "all months"
	}
	fmt.Printf("%s, %s: %d expenses, total %s\n",
		owner, scope, summary.Count, summary.Total.StringFixed(2))

	categories := make([]string, 0, len(summary.Categories))
	for c := range summary.Categories {
		categories = append(categories, c)
	}
	sort.Strings(categories)
	for _, c := range categories {
		fmt.Printf("  %-16s %10s\n", c, summary.Categories[c].StringFixed(2))
	}
	return nil
}
