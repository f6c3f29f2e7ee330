package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(commissionsCmd, customersCmd)
}

var commissionsCmd = &cobra.Command{
	Use:   "commissions",
	Short: "List commissions charged against this vendor",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		commissions, _, err := c.Commissions.My(cmd.Context(), flagPage, flagLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPRODUCT\tSALES\tRATE\tAMOUNT\tSTATUS")
		for _, cm := range commissions {
			status := cm.Status
			if status == "" {
				status = "Pending"
			}
			fmt.Fprintf(w, "%s\t%s\t%d\t%v\t%v\t%s\n", cm.ID, cm.Product, cm.Sales, orDash(cm.Rate), orDash(cm.Amount), status)
		}
		w.Flush()
		return nil
	},
}

func orDash(v interface{}) interface{} {
	if v == nil {
		return "-"
	}
	return v
}

var customersCmd = &cobra.Command{
	Use:   "customers",
	Short: "List customers",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		customers, _, err := c.Customers.List(cmd.Context(), flagPage, flagLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tEMAIL\tORDERS\tSPENT")
		for _, cu := range customers {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.2f\n", cu.ID, cu.Name, cu.Email, cu.TotalOrders, cu.TotalSpent)
		}
		w.Flush()
		return nil
	},
}
