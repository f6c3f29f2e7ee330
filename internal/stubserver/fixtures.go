package stubserver

import (
	"time"

	"github.com/google/uuid"

	"vendorpanel/internal/domain/entity"
)

func (s *Server) SeedProducts(products ...entity.Product) {
	s.mu.Lock()
	s.products = append(s.products, products...)
	s.mu.Unlock()
}

func (s *Server) SeedOrders(orders ...entity.Order) {
	s.mu.Lock()
	s.orders = append(s.orders, orders...)
	s.mu.Unlock()
}

func (s *Server) SeedCommissions(commissions ...entity.Commission) {
	s.mu.Lock()
	s.commissions = append(s.commissions, commissions...)
	s.mu.Unlock()
}

func (s *Server) SeedCustomers(customers ...entity.Customer) {
	s.mu.Lock()
	s.customers = append(s.customers, customers...)
	s.mu.Unlock()
}

func (s *Server) SeedNotifications(notifications ...entity.Notification) {
	s.mu.Lock()
	s.notifications = append(s.notifications, notifications...)
	s.mu.Unlock()
}

// SeedConversations takes loosely shaped conversation maps so tests can
// exercise the field-name cascades with whatever shape they need.
func (s *Server) SeedConversations(conversations ...map[string]interface{}) {
	s.mu.Lock()
	s.conversations = append(s.conversations, conversations...)
	s.mu.Unlock()
}

func (s *Server) SeedMessages(conversationID string, messages ...entity.Message) {
	s.mu.Lock()
	s.messages[conversationID] = append(s.messages[conversationID], messages...)
	s.mu.Unlock()
}

// SeedDemo loads a small fixture set used by the demo command.
func (s *Server) SeedDemo(userID string) {
	now := time.Now().UTC()
	s.SeedProducts(
		entity.Product{ID: uuid.NewString(), Title: "Handwoven Basket", Price: 2400, MainCategory: "goods", CreatedAt: now, UpdatedAt: now},
		entity.Product{ID: uuid.NewString(), Title: "Ceramic Vase", Price: 1800, MainCategory: "goods", CreatedAt: now, UpdatedAt: now},
	)
	s.SeedOrders(
		entity.Order{ID: uuid.NewString(), ProductTitle: "Handwoven Basket", CustomerName: "Asha Rai", TotalAmount: 2400, OrderStatus: entity.OrderInProgress, CreatedAt: now},
	)
	s.SeedNotifications(
		entity.Notification{ID: uuid.NewString(), Recipient: userID, Title: "New order", Message: "You received an order", Status: entity.NotificationUnread, SentAt: now},
	)
	s.SeedConversations(map[string]interface{}{
		"_id": uuid.NewString(),
		"participants": []interface{}{
			map[string]interface{}{
				"user":     map[string]interface{}{"_id": userID, "name": "Stub Vendor"},
				"lastRead": now.Add(-time.Hour).Format(time.RFC3339),
			},
			map[string]interface{}{
				"user": map[string]interface{}{"_id": uuid.NewString(), "name": "Asha Rai"},
			},
		},
		"lastMessage": map[string]interface{}{
			"text":      "Is this still available?",
			"sender":    "customer",
			"createdAt": now.Format(time.RFC3339),
		},
		"updatedAt": now.Format(time.RFC3339),
	})
}
