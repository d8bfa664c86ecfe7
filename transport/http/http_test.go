package http_test

import (
	nethttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"packshift/config"
	"packshift/infras/otel/mocks"
	"packshift/internal/handlers/notification"
	cacheMocks "packshift/shared/cache/mocks"
	"packshift/transport/http"
	"packshift/transport/http/middleware"
	"packshift/transport/http/router"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	cfg := &config.Config{}
	cfg.App.CORS.AllowedOrigins = []string{"*"}
	cfg.App.CORS.AllowedMethods = []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"}

	mockOtel := mocks.NewOtel()
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	hub := notification.NewHub()
	handlers := router.DomainHandlers{
		Notification: notification.New(hub),
	}

	srv := http.New(
		cfg,
		router.New(handlers),
		middleware.NewAppMiddleware(mockOtel, cfg, mockCache),
	)

	server := httptest.NewServer(srv.Handler())
	t.Cleanup(server.Close)

	return server
}

func TestHTTP_HealthCheck(t *testing.T) {
	server := newTestServer(t)

	resp, err := nethttp.Get(server.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
}

func TestHTTP_UnknownRoute(t *testing.T) {
	server := newTestServer(t)

	resp, err := nethttp.Get(server.URL + "/nope")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusNotFound, resp.StatusCode)
}
