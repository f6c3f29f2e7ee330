package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	ordersCmd.AddCommand(ordersListCmd, ordersSetStatusCmd)
	rootCmd.AddCommand(ordersCmd)
}

var ordersCmd = &cobra.Command{
	Use:   "orders",
	Short: "List and update vendor orders",
}

var ordersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List orders",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		orders, pagination, err := c.Orders.List(cmd.Context(), flagPage, flagLimit)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tPRODUCT\tCUSTOMER\tAMOUNT\tSTATUS")
		for _, o := range orders {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%s\n", o.ID, o.ProductTitle, o.CustomerName, o.TotalAmount, o.OrderStatus)
		}
		w.Flush()
		fmt.Printf("page %d of %d (%d items)\n", pagination.CurrentPage, pagination.TotalPages, pagination.Total())
		return nil
	},
}

var ordersSetStatusCmd = &cobra.Command{
	Use:   "set-status [id] [status]",
	Short: "Update an order's status",
	Long:  `Valid statuses: "items discounted", "in progress", shipped, delivered.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		order, err := c.Orders.UpdateStatus(cmd.Context(), args[0], args[1])
		if err != nil {
			return err
		}
		fmt.Printf("order %s is now %q\n", order.ID, order.OrderStatus)
		return nil
	},
}
