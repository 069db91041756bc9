package cli

import (
	"fmt"
	"sort"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"

	"github.com/tair/inventory-console/internal/api"
	"github.com/tair/inventory-console/internal/form"
)

// formFlags maps flag names to draft field names; every field of the
// product form is reachable from both the add and edit commands.
var formFlags = []struct {
	flag  string
	field string
	usage string
}{
	{"name", form.FieldName, "product name"},
	{"description", form.FieldDescription, "product description"},
	{"category", form.FieldCategoryID, "category id"},
	{"brand", form.FieldBrand, "brand"},
	{"quantity", form.FieldQuantity, "quantity in stock"},
	{"unit", form.FieldUnit, "unit: pcs|kg|litre|box|pack"},
	{"price", form.FieldPrice, "price"},
	{"discount", form.FieldDiscount, "discount percentage"},
	{"expiry", form.FieldExpiryDate, "expiry date (YYYY-MM-DD)"},
	{"min-stock", form.FieldMinStockLevel, "minimum stock level"},
	{"reorder", form.FieldReorderQuantity, "reorder quantity"},
}

func init() {
	addValues := make(map[string]*string)
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a new product",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctl := form.NewCreate(apiClient, routeLogger{})
			if err := ctl.Load(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ctl.LoadError())
				return err
			}
			if err := fillDraft(cmd, ctl, addValues); err != nil {
				return err
			}
			if cat, ok := ctl.CategoryByID(ctl.Draft().CategoryID); ok && cat.Description != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Category: %s (%s)\n", cat.Name, cat.Description)
			}
			if err := submit(cmd, ctl); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product added.")
			return nil
		},
	}
	for _, f := range formFlags {
		addValues[f.flag] = addCmd.Flags().String(f.flag, "", f.usage)
	}
	rootCmd.AddCommand(addCmd)

	editValues := make(map[string]*string)
	editCmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := cast.ToUintE(args[0])
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			ctl := form.NewEdit(apiClient, routeLogger{}, id)
			if err := ctl.Load(cmd.Context()); err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), ctl.LoadError())
				if api.IsNotFound(err) {
					fmt.Fprintln(cmd.ErrOrStderr(), "Back to products: run `inventory-console list`")
				}
				return err
			}
			if err := fillDraft(cmd, ctl, editValues); err != nil {
				return err
			}
			if err := submit(cmd, ctl); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Product updated.")
			return nil
		},
	}
	for _, f := range formFlags {
		editValues[f.flag] = editCmd.Flags().String(f.flag, "", f.usage)
	}
	rootCmd.AddCommand(editCmd)
}

// fillDraft feeds each flag the user set through the form reducer
func fillDraft(cmd *cobra.Command, ctl *form.Controller, values map[string]*string) error {
	for _, f := range formFlags {
		if !cmd.Flags().Changed(f.flag) {
			continue
		}
		if !ctl.UpdateField(f.field, *values[f.flag]) {
			return fmt.Errorf("invalid value for --%s: %q", f.flag, *values[f.flag])
		}
	}
	return nil
}

// submit runs the controller submission, rendering field errors inline
func submit(cmd *cobra.Command, ctl *form.Controller) error {
	err := ctl.Submit(cmd.Context())
	if err == nil {
		return nil
	}
	if err == form.ErrValidation {
		fields := make([]string, 0, len(ctl.Errors()))
		for field := range ctl.Errors() {
			fields = append(fields, field)
		}
		sort.Strings(fields)
		for _, field := range fields {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, ctl.Errors()[field])
		}
		return err
	}
	fmt.Fprintln(cmd.ErrOrStderr(), ctl.Banner())
	return err
}
