package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"vendorpanel/internal/client"
	"vendorpanel/internal/inbox"
)

var messageFiles []string

func init() {
	messagesCmd.AddCommand(messagesSendCmd, messagesListCmd)
	messagesSendCmd.Flags().StringSliceVar(&messageFiles, "file", nil, "attach a file (repeatable)")
	rootCmd.AddCommand(inboxCmd, messagesCmd)
}

var inboxCmd = &cobra.Command{
	Use:   "inbox",
	Short: "Show conversations and the derived unread total",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)
		userID, err := requireUser(cfg)
		if err != nil {
			return err
		}

		conversations, err := c.Chat.Inbox(cmd.Context())
		if err != nil {
			return err
		}
		for _, conv := range conversations {
			last := "(no messages)"
			if conv.LastMessage != nil {
				last = conv.LastMessage.Text
			}
			fmt.Printf("%s  %s\n", conv.ID, last)
		}

		raw, err := c.Chat.InboxRaw(cmd.Context())
		if err != nil {
			return err
		}
		total := inbox.ComputeUnread(inbox.ExtractConversations(raw), userID)
		if total == 0 {
			total = inbox.ExtractUnreadCount(raw)
		}
		fmt.Printf("%d conversations, %d unread\n", len(conversations), total)
		return nil
	},
}

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Read and send conversation messages",
}

var messagesListCmd = &cobra.Command{
	Use:   "list [conversationId]",
	Short: "List messages in a conversation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		messages, err := c.Chat.Messages(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		for _, m := range messages {
			fmt.Printf("[%s] %s: %s\n", m.CreatedAt.Format("15:04"), m.Sender.Name, m.Text)
		}
		return nil
	},
}

var messagesSendCmd = &cobra.Command{
	Use:   "send [conversationId] [text]",
	Short: "Send a message",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		c := newClient(cfg)

		var files []client.File
		var handles []*os.File
		defer func() {
			for _, h := range handles {
				h.Close()
			}
		}()
		for _, path := range messageFiles {
			f, err := os.Open(path)
			if err != nil {
				return err
			}
			handles = append(handles, f)
			files = append(files, client.File{Name: filepath.Base(path), Reader: f})
		}

		message, err := c.Chat.SendMessage(cmd.Context(), args[0], args[1], files...)
		if err != nil {
			return err
		}
		fmt.Println("sent", message.ID)
		return nil
	},
}
