// Package stubserver is an in-process stand-in for the vendor backend, used
// by the integration tests and the demo command. It speaks the same REST
// envelope and realtime events as the real service but holds all state in
// memory and accepts any non-empty bearer token.
package stubserver

import (
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"vendorpanel/internal/domain/entity"
	apperrors "vendorpanel/pkg/errors"
	"vendorpanel/pkg/response"
)

type Server struct {
	echo *echo.Echo
	hub  *Hub

	mu            sync.Mutex
	products      []entity.Product
	orders        []entity.Order
	commissions   []entity.Commission
	campaigns     []entity.Campaign
	customers     []entity.Customer
	notifications []entity.Notification
	// conversations stay loosely shaped on purpose: the reconciliation
	// logic has to cope with whatever field names the backend picked.
	conversations []map[string]interface{}
	messages      map[string][]entity.Message
}

func New() *Server {
	s := &Server{
		echo:     echo.New(),
		hub:      NewHub(),
		messages: make(map[string][]entity.Message),
	}
	s.echo.HideBanner = true
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.echo }
func (s *Server) Hub() *Hub            { return s.hub }

func (s *Server) routes() {
	e := s.echo

	e.GET("/ws", func(c echo.Context) error {
		return s.hub.ServeWS(c.Response(), c.Request())
	})

	e.POST("/auth/login", s.login)

	api := e.Group("", s.requireBearer)
	api.GET("/vendor/get-all-products", s.listProducts)
	api.GET("/product/:id", s.getProduct)
	api.POST("/product", s.createProduct)
	api.PUT("/product/:id", s.updateProduct)
	api.DELETE("/product/:id", s.deleteProduct)

	api.GET("/vendor/orders", s.listOrders)
	api.PATCH("/vendor/:id/status", s.updateOrderStatus)
	api.GET("/vendor/customers", s.listCustomers)
	api.GET("/commissions/my", s.listCommissions)

	api.GET("/vendor/big-save-campaigns", s.listCampaigns)
	api.POST("/vendor/big-save-campaigns", s.createCampaign)
	api.GET("/vendor/big-save-campaigns/:id", s.getCampaign)
	api.DELETE("/vendor/big-save-campaigns/:id", s.deleteCampaign)

	api.GET("/chat/inbox", s.inbox)
	api.GET("/chat/conversations/:id/messages", s.listMessages)
	api.POST("/chat/conversations/:id/messages", s.sendMessage)
	api.PATCH("/chat/conversations/read", s.markConversationsRead)

	api.GET("/notifications", s.listNotifications)
	api.PATCH("/notifications/mark-all", s.markAllNotifications)
	api.PATCH("/notifications/:id/status", s.markNotificationStatus)
}

// requireBearer accepts any non-empty bearer token; the stub does not verify
// sessions, it only exercises the client's 401 path.
func (s *Server) requireBearer(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		auth := c.Request().Header.Get("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") || strings.TrimPrefix(auth, "Bearer ") == "" {
			return response.Error(c, apperrors.Unauthorized("missing bearer token", nil))
		}
		return next(c)
	}
}

func (s *Server) login(c echo.Context) error {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("invalid login payload", err))
	}
	if req.Email == "" || req.Password == "" {
		return response.Error(c, apperrors.Unauthorized("invalid credentials", nil))
	}
	return response.Success(c, map[string]interface{}{
		"accessToken": uuid.NewString(),
		"user": entity.User{
			ID:    uuid.NewString(),
			Name:  "Stub Vendor",
			Email: req.Email,
			Role:  "VENDOR",
		},
	})
}

func pageParams(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if page <= 0 {
		page = 1
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return page, limit
}

func paginate[T any](items []T, page, limit int) []T {
	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

func (s *Server) listProducts(c echo.Context) error {
	page, limit := pageParams(c)
	s.mu.Lock()
	items := make([]entity.Product, len(s.products))
	copy(items, s.products)
	s.mu.Unlock()

	if mc := c.QueryParam("mainCategory"); mc != "" {
		filtered := items[:0]
		for _, p := range items {
			if p.MainCategory == mc {
				filtered = append(filtered, p)
			}
		}
		items = filtered
	}
	return response.Paginated(c, paginate(items, page, limit), len(items), page, limit)
}

func (s *Server) getProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.products {
		if p.ID == c.Param("id") {
			return response.Success(c, p)
		}
	}
	return response.Error(c, apperrors.NotFound("product", nil))
}

func (s *Server) createProduct(c echo.Context) error {
	title := c.FormValue("title")
	if title == "" {
		return response.Error(c, apperrors.BadRequest("title is required", nil))
	}
	price, _ := strconv.ParseFloat(c.FormValue("price"), 64)
	product := entity.Product{
		ID:           uuid.NewString(),
		Title:        title,
		Description:  c.FormValue("description"),
		MainCategory: c.FormValue("mainCategory"),
		Price:        price,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}
	if file, err := c.FormFile("mainImage"); err == nil {
		product.MainImage = &entity.ProductImage{URL: "/uploads/" + file.Filename}
	}
	if mf, err := c.MultipartForm(); err == nil {
		for _, g := range mf.File["imageGallery"] {
			product.ImageGallery = append(product.ImageGallery, entity.ProductImage{URL: "/uploads/" + g.Filename})
		}
	}

	s.mu.Lock()
	s.products = append(s.products, product)
	s.mu.Unlock()
	return response.Created(c, product)
}

func (s *Server) updateProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == c.Param("id") {
			if title := c.FormValue("title"); title != "" {
				s.products[i].Title = title
			}
			if priceStr := c.FormValue("price"); priceStr != "" {
				if price, err := strconv.ParseFloat(priceStr, 64); err == nil {
					s.products[i].Price = price
				}
			}
			s.products[i].UpdatedAt = time.Now().UTC()
			return response.Success(c, s.products[i])
		}
	}
	return response.Error(c, apperrors.NotFound("product", nil))
}

func (s *Server) deleteProduct(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == c.Param("id") {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return response.Success(c, nil)
		}
	}
	return response.Error(c, apperrors.NotFound("product", nil))
}

func (s *Server) listOrders(c echo.Context) error {
	page, limit := pageParams(c)
	s.mu.Lock()
	items := make([]entity.Order, len(s.orders))
	copy(items, s.orders)
	s.mu.Unlock()
	return response.Paginated(c, paginate(items, page, limit), len(items), page, limit)
}

func (s *Server) updateOrderStatus(c echo.Context) error {
	var req struct {
		OrderStatus string `json:"orderStatus"`
	}
	if err := c.Bind(&req); err != nil || req.OrderStatus == "" {
		return response.Error(c, apperrors.BadRequest("orderStatus is required", err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == c.Param("id") {
			s.orders[i].OrderStatus = req.OrderStatus
			return response.Success(c, s.orders[i])
		}
	}
	return response.Error(c, apperrors.NotFound("order", nil))
}

func (s *Server) listCustomers(c echo.Context) error {
	page, limit := pageParams(c)
	s.mu.Lock()
	items := make([]entity.Customer, len(s.customers))
	copy(items, s.customers)
	s.mu.Unlock()
	return response.Paginated(c, paginate(items, page, limit), len(items), page, limit)
}

func (s *Server) listCommissions(c echo.Context) error {
	page, limit := pageParams(c)
	s.mu.Lock()
	items := make([]entity.Commission, len(s.commissions))
	copy(items, s.commissions)
	s.mu.Unlock()
	return response.Success(c, map[string]interface{}{
		"commissions": paginate(items, page, limit),
		"pagination": response.Pagination{
			CurrentPage: page,
			PageSize:    limit,
			TotalItems:  len(items),
			HasNextPage: page*limit < len(items),
		},
	})
}

func (s *Server) listCampaigns(c echo.Context) error {
	page, limit := pageParams(c)
	status := c.QueryParam("status")
	s.mu.Lock()
	items := make([]entity.Campaign, 0, len(s.campaigns))
	for _, cp := range s.campaigns {
		if status == "" || cp.Status == status {
			items = append(items, cp)
		}
	}
	s.mu.Unlock()
	return response.Paginated(c, paginate(items, page, limit), len(items), page, limit)
}

func (s *Server) createCampaign(c echo.Context) error {
	var campaign entity.Campaign
	if err := c.Bind(&campaign); err != nil {
		return response.Error(c, apperrors.BadRequest("invalid campaign payload", err))
	}
	campaign.ID = uuid.NewString()
	if campaign.Status == "" {
		campaign.Status = entity.CampaignActive
	}
	campaign.CreatedAt = time.Now().UTC()
	campaign.UpdatedAt = campaign.CreatedAt

	s.mu.Lock()
	s.campaigns = append(s.campaigns, campaign)
	s.mu.Unlock()
	return response.Created(c, campaign)
}

func (s *Server) getCampaign(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cp := range s.campaigns {
		if cp.ID == c.Param("id") {
			return response.Success(c, cp)
		}
	}
	return response.Error(c, apperrors.NotFound("campaign", nil))
}

func (s *Server) deleteCampaign(c echo.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.campaigns {
		if s.campaigns[i].ID == c.Param("id") {
			s.campaigns = append(s.campaigns[:i], s.campaigns[i+1:]...)
			return response.Success(c, nil)
		}
	}
	return response.Error(c, apperrors.NotFound("campaign", nil))
}

func (s *Server) inbox(c echo.Context) error {
	// markConversationsRead mutates the participant maps in place, so the
	// snapshot has to copy past the slice header.
	s.mu.Lock()
	items := make([]map[string]interface{}, len(s.conversations))
	for i, conv := range s.conversations {
		items[i] = deepCopyMap(conv)
	}
	s.mu.Unlock()
	return response.Success(c, items)
}

func deepCopyMap(in map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		switch t := v.(type) {
		case map[string]interface{}:
			out[k] = deepCopyMap(t)
		case []interface{}:
			list := make([]interface{}, len(t))
			for i, item := range t {
				if m, ok := item.(map[string]interface{}); ok {
					list[i] = deepCopyMap(m)
				} else {
					list[i] = item
				}
			}
			out[k] = list
		default:
			out[k] = v
		}
	}
	return out
}

func (s *Server) listMessages(c echo.Context) error {
	s.mu.Lock()
	items := s.messages[c.Param("id")]
	out := make([]entity.Message, len(items))
	copy(out, items)
	s.mu.Unlock()
	return response.Success(c, out)
}

func (s *Server) sendMessage(c echo.Context) error {
	text := c.FormValue("text")
	if text == "" {
		return response.Error(c, apperrors.BadRequest("text is required", nil))
	}

	message := entity.Message{
		ID:        uuid.NewString(),
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}
	if mf, err := c.MultipartForm(); err == nil {
		for _, f := range mf.File["chatFile"] {
			message.Files = append(message.Files, entity.MessageFile{
				URL:      "/uploads/" + f.Filename,
				FileType: f.Header.Get("Content-Type"),
			})
		}
	}

	conversationID := c.Param("id")
	s.mu.Lock()
	s.messages[conversationID] = append(s.messages[conversationID], message)
	s.mu.Unlock()

	s.hub.Push(conversationRoom(conversationID), "newMessage", message)
	return response.Created(c, message)
}

func (s *Server) markConversationsRead(c echo.Context) error {
	var req struct {
		ConversationIDs []string `json:"conversationIds"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("invalid payload", err))
	}
	now := time.Now().UTC().Format(time.RFC3339)

	s.mu.Lock()
	for _, conv := range s.conversations {
		id, _ := conv["_id"].(string)
		for _, target := range req.ConversationIDs {
			if id == target {
				if participants, ok := conv["participants"].([]interface{}); ok {
					for _, p := range participants {
						if pm, ok := p.(map[string]interface{}); ok {
							pm["lastRead"] = now
							delete(pm, "unreadCount")
						}
					}
				}
			}
		}
	}
	s.mu.Unlock()
	return response.Success(c, nil)
}

func (s *Server) listNotifications(c echo.Context) error {
	s.mu.Lock()
	items := make([]entity.Notification, len(s.notifications))
	copy(items, s.notifications)
	s.mu.Unlock()
	return response.Success(c, map[string]interface{}{
		"notifications": items,
		"pagination": response.Pagination{
			CurrentPage: 1,
			PageSize:    len(items),
			TotalItems:  len(items),
		},
	})
}

func (s *Server) markAllNotifications(c echo.Context) error {
	s.mu.Lock()
	for i := range s.notifications {
		s.notifications[i].Status = entity.NotificationRead
	}
	s.mu.Unlock()
	return response.Success(c, nil)
}

func (s *Server) markNotificationStatus(c echo.Context) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return response.Error(c, apperrors.BadRequest("invalid payload", err))
	}
	if req.Status != entity.NotificationRead && req.Status != entity.NotificationUnread {
		return response.Error(c, apperrors.BadRequest("status must be read or unread", nil))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifications {
		if s.notifications[i].ID == c.Param("id") {
			s.notifications[i].Status = req.Status
			return response.Success(c, s.notifications[i])
		}
	}
	return response.Error(c, apperrors.NotFound("notification", nil))
}
