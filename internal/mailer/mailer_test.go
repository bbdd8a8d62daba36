package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio/internal/config"
)

func TestSendDisabledWithoutConfig(t *testing.T) {
	m := New(config.MailerConfig{}, zerolog.Nop())

	assert.False(t, m.Enabled())
	assert.NoError(t, m.Send(context.Background(), "subject", "<p>body</p>"))
}

func TestSendPostsToResend(t *testing.T) {
	var got sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		json.NewEncoder(w).Encode(sendResponse{ID: "email-1"})
	}))
	defer srv.Close()

	m := New(config.MailerConfig{
		APIKey:    "test-key",
		FromEmail: "Site <noreply@example.com>",
		ToEmail:   "owner@example.com",
	}, zerolog.Nop())
	m.endpoint = srv.URL

	err := m.Send(context.Background(), "New message", "<p>hello</p>")

	require.NoError(t, err)
	assert.Equal(t, "New message", got.Subject)
	assert.Equal(t, []string{"owner@example.com"}, got.To)
	assert.Equal(t, "<p>hello</p>", got.HTML)
}

func TestSendSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		json.NewEncoder(w).Encode(sendError{Message: "invalid from address"})
	}))
	defer srv.Close()

	m := New(config.MailerConfig{
		APIKey:    "test-key",
		FromEmail: "bad",
		ToEmail:   "owner@example.com",
	}, zerolog.Nop())
	m.endpoint = srv.URL

	err := m.Send(context.Background(), "s", "b")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid from address")
}
