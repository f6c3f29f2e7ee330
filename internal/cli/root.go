// Package cli implements the vendorctl command tree: a terminal front end
// for the vendor dashboard backend.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"vendorpanel/internal/client"
	"vendorpanel/internal/realtime"
	"vendorpanel/pkg/config"
)

var (
	flagBaseURL string
	flagToken   string
	flagUserID  string
	flagPage    int
	flagLimit   int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "vendorctl",
	Short: "Terminal client for the vendor dashboard backend",
	Long: `vendorctl talks to the vendor dashboard backend: product catalog,
orders, commissions, campaigns, notifications and real-time messaging.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is called by main.main(). Failures are printed as one-line
// messages, never stack traces.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "backend base URL (default BASE_URL env)")
	rootCmd.PersistentFlags().StringVar(&flagToken, "token", "", "bearer token (default ACCESS_TOKEN env)")
	rootCmd.PersistentFlags().StringVar(&flagUserID, "user", "", "current user id (default USER_ID env)")
	rootCmd.PersistentFlags().IntVar(&flagPage, "page", 1, "page number for list commands")
	rootCmd.PersistentFlags().IntVar(&flagLimit, "limit", 10, "page size for list commands")
}

func loadConfig() *config.Config {
	cfg, _ := config.Load()
	if flagBaseURL != "" {
		cfg.BaseURL = flagBaseURL
		cfg.SocketBaseURL = flagBaseURL
	}
	if flagToken != "" {
		cfg.AccessToken = flagToken
	}
	if flagUserID != "" {
		cfg.UserID = flagUserID
	}
	return cfg
}

func newClient(cfg *config.Config) *client.Client {
	return client.New(cfg.BaseURL,
		client.WithStaticToken(cfg.AccessToken),
		client.OnUnauthorized(func() {
			fmt.Fprintln(os.Stderr, "session expired, run `vendorctl login` again")
		}),
	)
}

func newManager(cfg *config.Config) *realtime.Manager {
	return realtime.NewManager(cfg.SocketBaseURL)
}

func requireUser(cfg *config.Config) (string, error) {
	if cfg.UserID == "" {
		return "", fmt.Errorf("user id is not set (use --user or USER_ID)")
	}
	return cfg.UserID, nil
}
