package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSocketURL(t *testing.T) {
	tests := []struct {
		name     string
		base     string
		explicit string
		want     string
	}{
		{"strips api suffix", "https://backend.example.com/api", "", "https://backend.example.com"},
		{"strips versioned api suffix", "https://backend.example.com/api/v1", "", "https://backend.example.com"},
		{"strips trailing slash", "https://backend.example.com/api/v2/", "", "https://backend.example.com"},
		{"case insensitive", "https://backend.example.com/API", "", "https://backend.example.com"},
		{"keeps api in the middle", "https://api.example.com", "", "https://api.example.com"},
		{"no suffix untouched", "http://localhost:3001", "", "http://localhost:3001"},
		{"explicit wins", "https://backend.example.com/api", "wss://push.example.com/", "wss://push.example.com"},
		{"empty base falls back", "", "", "http://localhost:5001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.explicit != "" {
				t.Setenv("SOCKET_BASE_URL", tt.explicit)
			} else {
				t.Setenv("SOCKET_BASE_URL", "")
			}
			assert.Equal(t, tt.want, deriveSocketURL(tt.base))
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BASE_URL", "")
	t.Setenv("SOCKET_BASE_URL", "")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "")

	cfg, err := Load()
	assert.NoError(t, err)
	// Empty env values are set, not absent, so they pass through as-is;
	// only unset keys fall back to defaults.
	assert.Equal(t, "", cfg.BaseURL)
	assert.Equal(t, int64(30), cfg.HTTPTimeout)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BASE_URL", "https://backend.example.com/api/v1")
	t.Setenv("SOCKET_BASE_URL", "")
	t.Setenv("ACCESS_TOKEN", "tok")
	t.Setenv("USER_ID", "u1")
	t.Setenv("HTTP_TIMEOUT_SECONDS", "12")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, "https://backend.example.com/api/v1", cfg.BaseURL)
	assert.Equal(t, "https://backend.example.com", cfg.SocketBaseURL)
	assert.Equal(t, "tok", cfg.AccessToken)
	assert.Equal(t, "u1", cfg.UserID)
	assert.Equal(t, int64(12), cfg.HTTPTimeout)
}
