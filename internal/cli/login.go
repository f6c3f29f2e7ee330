package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	loginCmd.MarkFlagRequired("email")
	loginCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(loginCmd)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Exchange credentials for an access token",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		result, err := c.Auth.Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		fmt.Printf("logged in as %s (%s)\n", result.User.Name, result.User.ID)
		fmt.Printf("export ACCESS_TOKEN=%s\n", result.AccessToken)
		fmt.Printf("export USER_ID=%s\n", result.User.ID)
		return nil
	},
}
