package notify

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTelegramNotifier_SendSuccess(t *testing.T) {
	var received telegramPayload
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	err := NewTelegramNotifier(srv.URL).Send(context.Background(), Message{
		Text:     "*Novo Pedido Recebido!*",
		UserName: "12345678",
	})

	require.NoError(t, err)
	assert.Equal(t, "*Novo Pedido Recebido!*", received.MessageText)
	assert.Equal(t, "12345678", received.UserName)
}

func TestTelegramNotifier_SendErrorJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"chat not found"}`))
	}))
	defer srv.Close()

	err := NewTelegramNotifier(srv.URL).Send(context.Background(), Message{Text: "x"})

	var werr *WebhookError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, http.StatusInternalServerError, werr.StatusCode)
	assert.Equal(t, "chat not found", werr.Message)
}

func TestTelegramNotifier_SendErrorNonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("Bad Gateway"))
	}))
	defer srv.Close()

	err := NewTelegramNotifier(srv.URL).Send(context.Background(), Message{Text: "x"})

	var werr *WebhookError
	require.True(t, errors.As(err, &werr))
	assert.Equal(t, http.StatusBadGateway, werr.StatusCode)
	assert.Empty(t, werr.Message)
}

func TestTelegramNotifier_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	err := NewTelegramNotifier(url).Send(context.Background(), Message{Text: "x"})

	require.Error(t, err)
	var werr *WebhookError
	assert.False(t, errors.As(err, &werr))
	assert.Contains(t, err.Error(), "failed to send notification")
}
