package cli

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"vendorpanel/internal/domain/entity"
	"vendorpanel/internal/inbox"
)

func init() {
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch unread notification and message counts live",
	Long: `Joins the per-user notification and message rooms, seeds the message
count from the inbox snapshot, then prints every change until interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)
		userID, err := requireUser(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		manager := newManager(cfg)
		defer manager.Disconnect()
		socket := manager.Socket()

		notifications := inbox.NewNotificationCounter(socket)
		notifications.OnChange(func(n int) {
			fmt.Printf("notifications: %d unread\n", n)
		})
		notifications.OnNotification(func(n *entity.Notification) {
			fmt.Printf("new notification: %s\n", n.Title)
		})
		messages := inbox.NewMessageCounter(socket, c.Chat)
		messages.OnChange(func(n int) {
			fmt.Printf("messages: %d unread\n", n)
		})

		notifications.Start(userID)
		defer notifications.Stop()
		messages.Start(ctx, userID)
		defer messages.Stop()

		fmt.Println("watching (ctrl-c to stop)")
		<-ctx.Done()
		if ctx.Err() == context.Canceled {
			return nil
		}
		return nil
	},
}
