package realtime

import (
	"context"
	"net/http"

	ws "github.com/coder/websocket"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-heatmap/internal/core/heatmap"
)

// CurrentFunc computes the dashboard a new client starts from.
type CurrentFunc func(ctx context.Context) (heatmap.Dashboard, error)

// HandleWebSocket upgrades the request, sends the current dashboard and then
// streams every update until the client goes away.
func HandleWebSocket(hub *Hub, current CurrentFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := ws.Accept(w, r, &ws.AcceptOptions{
			InsecureSkipVerify: true,
		})
		if err != nil {
			hub.logger.Warn("Websocket accept failed", zap.Error(err))
			return
		}
		defer conn.CloseNow()

		var initial []byte
		if current != nil {
			d, err := current(r.Context())
			if err != nil {
				hub.logger.Error("Failed to compute initial dashboard", zap.Error(err))
				conn.Close(ws.StatusInternalError, "dashboard unavailable")
				return
			}
			if initial, err = encode(d); err != nil {
				hub.logger.Error("Failed to marshal dashboard", zap.Error(err))
				conn.Close(ws.StatusInternalError, "dashboard unavailable")
				return
			}
		}

		NewClient(hub, conn).Run(r.Context(), initial)
	}
}
