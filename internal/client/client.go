// Package client is the typed wrapper around the vendor backend's REST API.
// Every endpoint returns a { success, message, data } envelope; the client
// unwraps it, attaches the bearer token, and maps failures onto AppError
// values. A 401 from any endpoint fires the OnUnauthorized hook exactly like
// the dashboard's global logout redirect.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"

	apperrors "vendorpanel/pkg/errors"
)

// TokenSource supplies the current bearer token; it is consulted on every
// request so an externally refreshed session is picked up automatically.
type TokenSource func() string

type Client struct {
	baseURL        string
	http           *http.Client
	token          TokenSource
	onUnauthorized func()
	validate       *validator.Validate

	Auth          *AuthService
	Products      *ProductService
	Categories    *CategoryService
	Campaigns     *CampaignService
	Orders        *OrderService
	Customers     *CustomerService
	Coupons       *CouponService
	Commissions   *CommissionService
	Chat          *ChatService
	Notifications *NotificationService
	Account       *AccountService
	Dashboard     *DashboardService
}

type Option func(*Client)

func WithToken(ts TokenSource) Option {
	return func(c *Client) { c.token = ts }
}

func WithStaticToken(token string) Option {
	return func(c *Client) { c.token = func() string { return token } }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// OnUnauthorized registers the hook fired whenever any request comes back
// 401. The dashboard uses this to drop the session and return to login.
func OnUnauthorized(fn func()) Option {
	return func(c *Client) { c.onUnauthorized = fn }
}

func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:  trimBase(baseURL),
		http:     &http.Client{Timeout: 30 * time.Second},
		token:    func() string { return "" },
		validate: validator.New(),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.Auth = &AuthService{c}
	c.Products = &ProductService{c}
	c.Categories = &CategoryService{c}
	c.Campaigns = &CampaignService{c}
	c.Orders = &OrderService{c}
	c.Customers = &CustomerService{c}
	c.Coupons = &CouponService{c}
	c.Commissions = &CommissionService{c}
	c.Chat = &ChatService{c}
	c.Notifications = &NotificationService{c}
	c.Account = &AccountService{c}
	c.Dashboard = &DashboardService{c}

	return c
}

func trimBase(baseURL string) string {
	for len(baseURL) > 0 && baseURL[len(baseURL)-1] == '/' {
		baseURL = baseURL[:len(baseURL)-1]
	}
	return baseURL
}

type envelope struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

func (c *Client) patch(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodPatch, path, nil, body, out)
}

func (c *Client) delete(ctx context.Context, path string, body, out interface{}) error {
	return c.do(ctx, http.MethodDelete, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperrors.Internal("failed to encode request body", err)
		}
		reader = bytes.NewReader(encoded)
	}

	req, err := c.newRequest(ctx, method, path, query, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out)
}

func (c *Client) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, apperrors.Internal("failed to build request", err)
	}
	if token := c.token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) send(req *http.Request, out interface{}) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return apperrors.Network(fmt.Sprintf("%s %s failed", req.Method, req.URL.Path), err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return apperrors.Network("failed to read response body", err)
	}

	var env envelope
	envOK := json.Unmarshal(raw, &env) == nil && env.Success != nil

	if resp.StatusCode == http.StatusUnauthorized {
		if c.onUnauthorized != nil {
			c.onUnauthorized()
		}
		return apperrors.Unauthorized(envMessage(env, "session expired"), nil)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return apperrors.FromStatus(resp.StatusCode, env.Message)
	}

	if envOK && !*env.Success {
		return apperrors.New("API_ERROR", envMessage(env, "request failed"), resp.StatusCode, nil)
	}

	if out == nil {
		return nil
	}

	// Some endpoints skip the envelope and return the payload directly;
	// decode whichever shape we got.
	payload := raw
	if envOK && len(env.Data) > 0 && string(env.Data) != "null" {
		payload = env.Data
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return apperrors.Internal("unexpected response shape", err)
	}
	return nil
}

func envMessage(env envelope, fallback string) string {
	if env.Message != "" {
		return env.Message
	}
	return fallback
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	if page <= 0 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
