package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gastos-dev/gastos/internal/config"
)

func newCategoriesCommand() *cobra.Command {
	catCmd := &cobra.Command{
		Use:   "categories",
		Short: "Manage categorization rules",
	}
	catCmd.AddCommand(newCategoriesListCommand())
	catCmd.AddCommand(newAddKeywordCommand())
	return catCmd
}

func newCategoriesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories and their keywords in match priority order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			rules := cfg.Rules()
			for _, label := range rules.Categories() {
				fmt.Printf("%s: %s\n", label, strings.Join(rules.Keywords(label), ", "))
			}
			return nil
		},
	}
}

func newAddKeywordCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "add-keyword <category> <keyword>",
		Short: "Register a keyword for a category and persist it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, path, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			label := args[0]
			keyword := strings.ToLower(strings.TrimSpace(args[1]))
			if keyword == "" {
				return fmt.Errorf("keyword must not be empty")
			}

			cfg.AddKeyword(label, keyword)
			if err := config.Save(path, cfg); err != nil {
				return err
			}

			fmt.Printf("Added keyword %q to %s\n", keyword, label)
			return nil
		},
	}
}
