package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCommand() *cobra.Command {
	var owner string
	var month string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored expenses, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, owner, month)
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "owner to list (defaults to config default_owner)")
	cmd.Flags().StringVar(&month, "month", "", "restrict to one month (YYYY-MM)")

	return cmd
}

func runList(cmd *cobra.Command, owner, month string) error {
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

	for _, e := range expenses {
		fmt.Printf("%s  %10s  %-16s  %s\n", e.Date, e.Amount.StringFixed(2), e.Category, e.Description)
	}
	fmt.Printf("%d expenses\n", len(expenses))
	return nil
}
