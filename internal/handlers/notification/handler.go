package notification

import (
	"io"
	"net/http"
	"sync"

	"packshift/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"
)

// Hub tracks the set of open notification connections. Nothing is pushed
// to clients yet; the hub only observes the connect and disconnect
// lifecycle so real-time updates can attach here later.
type Hub struct {
	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

func (h *Hub) register(conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.conns[conn] = struct{}{}

	return len(h.conns)
}

func (h *Hub) unregister(conn *websocket.Conn) int {
	h.mu.Lock()
	defer h.mu.Unlock()

	delete(h.conns, conn)

	return len(h.conns)
}

// Count returns the number of open connections.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.conns)
}

type Handler struct {
	hub *Hub
}

func New(hub *Hub) Handler {
	return Handler{
		hub: hub,
	}
}

func (handler *Handler) Router(router chi.Router) {
	wsHandler := websocket.Handler(handler.handleConn)

	router.Get("/ws", func(w http.ResponseWriter, r *http.Request) {
		wsHandler.ServeHTTP(w, r)
	})
}

func (handler *Handler) handleConn(conn *websocket.Conn) {
	defer func() {
		_ = conn.Close()
	}()

	remote := constant.Empty
	if request := conn.Request(); request != nil {
		remote = request.RemoteAddr
	}

	total := handler.hub.register(conn)
	log.Info().Str("remote", remote).Int("connections", total).Msg("notification client connected")

	defer func() {
		total := handler.hub.unregister(conn)
		log.Info().Str("remote", remote).Int("connections", total).Msg("notification client disconnected")
	}()

	// Drain inbound frames until the client goes away. Payloads are
	// ignored; the channel carries no application messages yet.
	buffer := make([]byte, 512)

	for {
		if _, err := conn.Read(buffer); err != nil {
			if err != io.EOF {
				log.Debug().Err(err).Str("remote", remote).Msg("notification connection read error")
			}

			return
		}
	}
}
