// ABOUTME: categories command lists the category filters accepted by read -c
// ABOUTME: Prints one category per line in display order

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsfeed-api/core/domain"
)

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the category filters accepted by 'read --category'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range domain.Categories {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
