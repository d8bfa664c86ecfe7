package notification_test

import (
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"packshift/internal/handlers/notification"
)

func TestNotificationHub_ConnectDisconnect(t *testing.T) {
	hub := notification.NewHub()
	handler := notification.New(hub)

	router := chi.NewRouter()
	handler.Router(router)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := strings.Replace(server.URL, "http://", "ws://", 1) + "/ws"

	conn, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, conn.Close())

	assert.Eventually(t, func() bool {
		return hub.Count() == 0
	}, time.Second, 10*time.Millisecond)
}

func TestNotificationHub_MultipleClients(t *testing.T) {
	hub := notification.NewHub()
	handler := notification.New(hub)

	router := chi.NewRouter()
	handler.Router(router)

	server := httptest.NewServer(router)
	defer server.Close()

	wsURL := strings.Replace(server.URL, "http://", "ws://", 1) + "/ws"

	first, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)
	defer first.Close()

	second, err := websocket.Dial(wsURL, "", server.URL)
	require.NoError(t, err)

	assert.Eventually(t, func() bool {
		return hub.Count() == 2
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, second.Close())

	assert.Eventually(t, func() bool {
		return hub.Count() == 1
	}, time.Second, 10*time.Millisecond)
}
