package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"vendorpanel/internal/client"
	"vendorpanel/internal/domain/entity"
	"vendorpanel/internal/inbox"
)

func init() {
	notificationsCmd.AddCommand(notificationsListCmd, notificationsMarkAllCmd, notificationsMarkCmd)
	rootCmd.AddCommand(notificationsCmd)
}

var notificationsCmd = &cobra.Command{
	Use:   "notifications",
	Short: "List and acknowledge notifications",
}

var notificationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notifications",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		page, err := c.Notifications.List(cmd.Context())
		if err != nil {
			return err
		}
		if len(page.Notifications) == 0 {
			fmt.Println("no notifications")
			return nil
		}

		unread := 0
		for _, n := range page.Notifications {
			marker := " "
			if n.Unread() {
				marker = "*"
				unread++
			}
			fmt.Printf("%s %s  %s | %s\n", marker, n.ID, n.Title, n.Message)
		}
		fmt.Printf("%d unread of %d\n", unread, len(page.Notifications))
		return nil
	},
}

// loadReadState snapshots the current notifications into a ReadState so the
// mark commands can apply the change optimistically and report the resulting
// unread count without a second list call.
func loadReadState(cmd *cobra.Command) (*client.Client, *inbox.ReadState, error) {
	cfg := loadConfig()
	c := newClient(cfg)

	page, err := c.Notifications.List(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	state := inbox.NewReadState()
	state.Refresh(page.Notifications)
	return c, state, nil
}

var notificationsMarkAllCmd = &cobra.Command{
	Use:   "mark-all",
	Short: "Mark every notification read",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, state, err := loadReadState(cmd)
		if err != nil {
			return err
		}

		changed := state.MarkAllPending()
		if len(changed) == 0 {
			fmt.Println("nothing unread")
			return nil
		}
		if err := c.Notifications.MarkAllRead(cmd.Context()); err != nil {
			for _, id := range changed {
				state.Revert(id, entity.NotificationUnread)
			}
			return err
		}
		for _, id := range changed {
			state.Confirm(id)
		}
		fmt.Printf("marked %d notifications read\n", len(changed))
		return nil
	},
}

var notificationsMarkCmd = &cobra.Command{
	Use:   "mark [id]",
	Short: "Mark one notification read",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, state, err := loadReadState(cmd)
		if err != nil {
			return err
		}

		previous, known := state.MarkPending(args[0], entity.NotificationRead)
		if err := c.Notifications.MarkStatus(cmd.Context(), args[0], entity.NotificationRead); err != nil {
			if known {
				state.Revert(args[0], previous)
			}
			return err
		}
		state.Confirm(args[0])
		fmt.Printf("marked %s (%d unread left)\n", args[0], state.UnreadCount())
		return nil
	},
}
