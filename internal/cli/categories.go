package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tair/inventory-console/internal/catalog"
)

func init() {
	var taxonomy bool
	categoriesCmd := &cobra.Command{
		Use:   "categories",
		Short: "List form categories or the display taxonomy",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if taxonomy {
				for _, entry := range catalog.Taxonomy {
					fmt.Fprintf(out, "%-20s %s\n", entry.Slug, entry.Label)
					fmt.Fprintf(out, "%-20s %s\n", "", entry.Description)
				}
				return nil
			}

			categories, err := apiClient.ListCategories(cmd.Context())
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Failed to load categories. Please try again.")
				return err
			}
			for _, c := range categories {
				fmt.Fprintf(out, "[%d] %s", c.ID, c.Name)
				if c.Description != "" {
					fmt.Fprintf(out, " - %s", c.Description)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	categoriesCmd.Flags().BoolVar(&taxonomy, "taxonomy", false, "show the display taxonomy instead of the server list")
	rootCmd.AddCommand(categoriesCmd)
}
