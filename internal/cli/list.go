package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/tair/inventory-console/internal/catalog"
)

func init() {
	var (
		search   string
		category string
		sortBy   string
		order    string
	)
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List products grouped by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := catalog.NewController(apiClient)
			if err := ctl.Load(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Failed to load products. Please try again later.")
				return err
			}

			q := catalog.NewQuery()
			q.Search = search
			q.Category = category
			if sortBy != "" {
				q.SortBy = sortBy
			}
			if order != "" {
				q.Order = order
			}

			out := cmd.OutOrStdout()
			groups := ctl.View(q)
			if len(groups) == 0 {
				fmt.Fprintln(out, "No products found matching your search criteria.")
				return nil
			}

			total := 0
			for _, g := range groups {
				total += len(g.Products)
			}
			fmt.Fprintf(out, "%d products", total)
			if low := ctl.LowStock(); low > 0 {
				fmt.Fprintf(out, ", %d low stock", low)
			}
			fmt.Fprintln(out)

			for _, g := range groups {
				fmt.Fprintf(out, "\n%s\n", g.Label)
				for i := range g.Products {
					printProduct(out, &g.Products[i])
				}
			}
			return nil
		},
	}
	listCmd.Flags().StringVar(&search, "search", "", "search name, brand and description")
	listCmd.Flags().StringVar(&category, "category", "", "filter by category slug")
	listCmd.Flags().StringVar(&sortBy, "sort", "", "sort by: name|price|quantity")
	listCmd.Flags().StringVar(&order, "order", "", "sort order: asc|desc")
	rootCmd.AddCommand(listCmd)

	lowStockCmd := &cobra.Command{
		Use:   "lowstock",
		Short: "List products at or below their minimum stock level",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := catalog.NewController(apiClient)
			if err := ctl.Load(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Failed to load products. Please try again later.")
				return err
			}

			out := cmd.OutOrStdout()
			products := ctl.Products()
			count := 0
			for i := range products {
				if products[i].IsLowStock() {
					printProduct(out, &products[i])
					count++
				}
			}
			if count == 0 {
				fmt.Fprintln(out, "No products are low on stock.")
			}
			return nil
		},
	}
	rootCmd.AddCommand(lowStockCmd)
}

func printProduct(out io.Writer, p *catalog.Product) {
	price := catalog.EffectivePrice(p)
	stock := catalog.Stock(p)

	line := fmt.Sprintf("  [%d] %s", p.ID, p.Name)
	if p.Brand != "" {
		line += fmt.Sprintf(" (%s)", p.Brand)
	}
	if price.Original != "" {
		line += fmt.Sprintf("  ₹%s ₹%s (-%.0f%%)", price.Original, price.Effective, price.Discount)
	} else {
		line += fmt.Sprintf("  ₹%s", price.Effective)
	}
	line += fmt.Sprintf("  %s", stock.Text)
	fmt.Fprintln(out, line)

	if p.Description != "" {
		fmt.Fprintf(out, "      %s\n", p.Description)
	}
}
