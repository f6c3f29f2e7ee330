package cli

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"vendorpanel/internal/client"
)

var productStore string
var productMainCategory string

func init() {
	productsCmd.AddCommand(productsListCmd, productsGetCmd, productsDeleteCmd)
	productsListCmd.Flags().StringVar(&productStore, "store", "", "filter by store id")
	productsListCmd.Flags().StringVar(&productMainCategory, "main-category", "", "filter by main category")
	rootCmd.AddCommand(productsCmd)
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

func clientListOptions() client.ProductListOptions {
	return client.ProductListOptions{
		StoreID:      productStore,
		MainCategory: productMainCategory,
		Page:         flagPage,
		Limit:        flagLimit,
	}
}

var productsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List products",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		products, pagination, err := c.Products.List(cmd.Context(), clientListOptions())
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tPRICE\tCATEGORY")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", p.ID, p.Title, p.Price, p.MainCategory)
		}
		w.Flush()
		fmt.Printf("page %d of %d (%d items)\n", pagination.CurrentPage, pagination.TotalPages, pagination.Total())
		return nil
	},
}

var productsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		product, err := c.Products.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s\n  price: %.2f\n  category: %s\n  stock: %d\n", product.Title, product.Price, product.MainCategory, product.StockQuantity)
		return nil
	},
}

var productsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a product",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		if err := c.Products.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}
