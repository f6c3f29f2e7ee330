package cli

import (
	"fmt"
	"net/http/httptest"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"vendorpanel/internal/client"
	"vendorpanel/internal/domain/entity"
	"vendorpanel/internal/inbox"
	"vendorpanel/internal/realtime"
	"vendorpanel/internal/stubserver"
)

func init() {
	rootCmd.AddCommand(demoCmd)
}

// demoCmd runs the whole stack against the in-process stub backend: seeds
// fixtures, starts both counters, then pushes events and shows the counts
// converge.
var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run the client against an in-process stub backend",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID := uuid.NewString()

		stub := stubserver.New()
		stub.SeedDemo(userID)
		server := httptest.NewServer(stub.Handler())
		defer server.Close()

		c := client.New(server.URL, client.WithStaticToken("demo-token"))
		manager := realtime.NewManager(server.URL)
		defer manager.Disconnect()
		socket := manager.Socket()

		notifications := inbox.NewNotificationCounter(socket)
		notifications.OnChange(func(n int) { fmt.Printf("notifications: %d unread\n", n) })
		messages := inbox.NewMessageCounter(socket, c.Chat)
		messages.OnChange(func(n int) { fmt.Printf("messages: %d unread\n", n) })

		notifications.Start(userID)
		defer notifications.Stop()
		messages.Start(cmd.Context(), userID)
		defer messages.Stop()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			ticker := time.NewTicker(2 * time.Second)
			defer ticker.Stop()
			count := 1
			for {
				select {
				case <-ticker.C:
					stub.Hub().PushNotification(userID, entity.Notification{
						ID:     uuid.NewString(),
						Title:  fmt.Sprintf("Demo event %d", count),
						Status: entity.NotificationUnread,
						SentAt: time.Now().UTC(),
					}, count)
					stub.Hub().PushNewMessage(userID, map[string]interface{}{
						"senderId": "someone-else",
						"text":     "demo message",
					})
					count++
				case <-ctx.Done():
					return nil
				}
			}
		})

		fmt.Println("demo running (ctrl-c to stop)")
		return g.Wait()
	},
}
