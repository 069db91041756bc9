package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tair/inventory-console/internal/catalog"
)

func init() {
	var yes bool
	deleteCmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUintE(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if !yes && !confirm(cmd) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			ctl := catalog.NewController(apiClient)
			if err := ctl.Delete(cmd.Context(), id); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "Failed to delete product. Please try again.")
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Product %d deleted. %d products remaining.\n",
				id, len(ctl.Products()))
			return nil
		},
	}
	deleteCmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func confirm(cmd *cobra.Command) bool {
	fmt.Fprint(cmd.OutOrStdout(), "Are you sure you want to delete this product? [y/N]: ")
	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}
