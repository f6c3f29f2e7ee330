package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "vendorpanel/pkg/errors"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		json.NewEncoder(w).Encode(map[string]interface{}{"success": true, "data": []interface{}{}})
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("tok-123"))
	_, err := c.Chat.Inbox(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"_id": "p1", "title": "Basket", "price": 12.5},
		})
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("t"))
	product, err := c.Products.Get(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "Basket", product.Title)
	assert.Equal(t, 12.5, product.Price)
}

func TestClientToleratesBareBody(t *testing.T) {
	// Some endpoints skip the envelope entirely.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"notifications": []map[string]interface{}{{"_id": "n1", "title": "hi", "status": "unread"}},
		})
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("t"))
	page, err := c.Notifications.List(context.Background())
	require.NoError(t, err)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, "n1", page.Notifications[0].ID)
}

func TestClientFiresUnauthorizedHook(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "token expired"})
	}))
	defer server.Close()

	fired := false
	c := New(server.URL, WithStaticToken("t"), OnUnauthorized(func() { fired = true }))
	_, err := c.Chat.Inbox(context.Background())

	require.Error(t, err)
	assert.True(t, fired)
	assert.True(t, apperrors.Is(err, "UNAUTHORIZED"))

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "token expired", appErr.Message)
}

func TestClientServerRejection(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{"success": false, "message": "store suspended"})
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("t"))
	_, err := c.Chat.Inbox(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "API_ERROR"))
}

func TestClientHTTPErrorWithoutEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("t"))
	_, err := c.Products.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NOT_FOUND"))
}

func TestClientNetworkError(t *testing.T) {
	c := New("http://127.0.0.1:1", WithStaticToken("t"))
	_, err := c.Chat.Inbox(context.Background())
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "NETWORK_ERROR"))
}

func TestPaginationAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))
		json.NewEncoder(w).Encode(map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"items": []map[string]interface{}{{"_id": "o1"}},
				"pagination": map[string]interface{}{
					"currentPage": 2,
					"totalData":   11,
					"hasNextPage": true,
				},
			},
		})
	}))
	defer server.Close()

	c := New(server.URL, WithStaticToken("t"))
	orders, pagination, err := c.Orders.List(context.Background(), 2, 5)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, 11, pagination.Total())
	assert.True(t, pagination.HasNextPage)
}

func TestOrderStatusValidation(t *testing.T) {
	c := New("http://example.invalid", WithStaticToken("t"))
	_, err := c.Orders.UpdateStatus(context.Background(), "o1", "teleported")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}

func TestCampaignInputValidation(t *testing.T) {
	c := New("http://example.invalid", WithStaticToken("t"))

	_, err := c.Campaigns.Create(context.Background(), CampaignInput{
		DiscountType:  "HALF_OFF",
		DiscountValue: 10,
		StartAt:       "2024-01-01T00:00:00Z",
		EndAt:         "2024-02-01T00:00:00Z",
	})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))

	_, err = c.Campaigns.Create(context.Background(), CampaignInput{
		DiscountType: "PERCENT",
		StartAt:      "2024-01-01T00:00:00Z",
		EndAt:        "2024-02-01T00:00:00Z",
	})
	require.Error(t, err, "missing discountValue must fail before any request is sent")
}

func TestNotificationStatusValidation(t *testing.T) {
	c := New("http://example.invalid", WithStaticToken("t"))
	err := c.Notifications.MarkStatus(context.Background(), "n1", "archived")
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "VALIDATION_ERROR"))
}
