package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

const TypeDashboard = "dashboard"

// Message is what every connected client receives.
type Message struct {
	Type      string            `json:"type"`
	Dashboard heatmap.Dashboard `json:"dashboard"`
}

// Hub keeps the connected clients and pushes each recomputed dashboard to
// all of them.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	logger  *zap.Logger
}

func NewHub(logger *zap.Logger) *Hub {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Hub{
		clients: make(map[*Client]struct{}),
		logger:  logger.Named("realtime"),
	}
}

func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

// Unregister removes the client and closes its send channel. Safe to call
// twice.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
	h.mu.Unlock()
}

// PublishDashboard broadcasts d. Slow clients miss the update rather than
// block the others.
func (h *Hub) PublishDashboard(ctx context.Context, d heatmap.Dashboard) {
	data, err := encode(d)
	if err != nil {
		h.logger.Error("Failed to marshal dashboard", zap.Error(err))
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Debug("Client buffer full, dropping update")
		}
	}
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func encode(d heatmap.Dashboard) ([]byte, error) {
	return json.Marshal(Message{Type: TypeDashboard, Dashboard: d})
}
