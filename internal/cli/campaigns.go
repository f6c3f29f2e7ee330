package cli

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"vendorpanel/internal/client"
)

var (
	campaignStatus        string
	campaignName          string
	campaignDiscountType  string
	campaignDiscountValue float64
	campaignStart         string
	campaignEnd           string
	campaignProducts      []string
)

func init() {
	campaignsCmd.AddCommand(campaignsListCmd, campaignsGetCmd, campaignsCreateCmd, campaignsDeleteCmd, campaignsAttachCmd)

	campaignsListCmd.Flags().StringVar(&campaignStatus, "status", "", "filter: ACTIVE, INACTIVE or EXPIRED")

	campaignsCreateCmd.Flags().StringVar(&campaignName, "name", "", "campaign name")
	campaignsCreateCmd.Flags().StringVar(&campaignDiscountType, "discount-type", "PERCENT", "PERCENT or FIXED")
	campaignsCreateCmd.Flags().Float64Var(&campaignDiscountValue, "discount-value", 0, "discount value")
	campaignsCreateCmd.Flags().StringVar(&campaignStart, "start", "", "start time (RFC3339)")
	campaignsCreateCmd.Flags().StringVar(&campaignEnd, "end", "", "end time (RFC3339)")
	campaignsCreateCmd.Flags().StringSliceVar(&campaignProducts, "products", nil, "product ids to attach")

	rootCmd.AddCommand(campaignsCmd)
}

var campaignsCmd = &cobra.Command{
	Use:   "campaigns",
	Short: "Manage big-save promotional campaigns",
}

var campaignsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List campaigns",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		campaigns, _, err := c.Campaigns.List(cmd.Context(), flagPage, flagLimit, campaignStatus)
		if err != nil {
			return err
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tDISCOUNT\tSTATUS\tENDS")
		for _, cp := range campaigns {
			fmt.Fprintf(w, "%s\t%s\t%.0f %s\t%s\t%s\n", cp.ID, cp.Name, cp.DiscountValue, cp.DiscountType, cp.Status, cp.EndAt.Format(time.RFC3339))
		}
		w.Flush()
		return nil
	},
}

var campaignsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		cp, err := c.Campaigns.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Printf("%s (%s)\n  discount: %.0f %s\n  window: %s - %s\n  products: %d\n",
			cp.Name, cp.Status, cp.DiscountValue, cp.DiscountType,
			cp.StartAt.Format(time.RFC3339), cp.EndAt.Format(time.RFC3339), len(cp.ProductIDs))
		return nil
	},
}

var campaignsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a campaign",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		cp, err := c.Campaigns.Create(cmd.Context(), client.CampaignInput{
			Name:          campaignName,
			DiscountType:  campaignDiscountType,
			DiscountValue: campaignDiscountValue,
			StartAt:       campaignStart,
			EndAt:         campaignEnd,
			ProductIDs:    campaignProducts,
		})
		if err != nil {
			return err
		}
		fmt.Println("created campaign", cp.ID)
		return nil
	},
}

var campaignsDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a campaign",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		if err := c.Campaigns.Delete(cmd.Context(), args[0]); err != nil {
			return err
		}
		fmt.Println("deleted", args[0])
		return nil
	},
}

var campaignsAttachCmd = &cobra.Command{
	Use:   "attach [id] [productId...]",
	Short: "Attach products to a campaign",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		if err := c.Campaigns.AttachProducts(cmd.Context(), args[0], args[1:]); err != nil {
			return err
		}
		fmt.Printf("attached %d products to %s\n", len(args)-1, args[0])
		return nil
	},
}
