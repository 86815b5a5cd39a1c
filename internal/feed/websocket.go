package feed

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/feral-file/ff-market/internal/logger"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = 30 * time.Second
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origins are enforced by the CORS layer in front of the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// historyFrame is the first frame sent to a new subscriber
type historyFrame struct {
	Type         string      `json:"type"`
	Transactions interface{} `json:"transactions"`
}

// ServeWS upgrades the request and streams feed messages until either side closes.
// The optional limit query parameter sizes the initial history frame.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.WarnCtx(r.Context(), "Websocket upgrade failed", zap.Error(err))
		return
	}

	// the request context ends with the handler, the connection outlives it
	ctx := context.Background()
	client, history, err := h.Register(ctx, limit)
	if err != nil {
		logger.ErrorCtx(ctx, fmt.Errorf("failed to register feed client: %w", err))
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseInternalServerErr, "feed unavailable"),
			time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}

	logger.DebugCtx(ctx, "Feed client connected", zap.String("clientID", client.ID.String()))

	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(historyFrame{Type: "history", Transactions: history}); err != nil {
		h.Unregister(client)
		_ = conn.Close()
		return
	}

	go h.writeLoop(client, conn)
	go h.readLoop(client, conn)
}

// readLoop discards client frames and detects disconnects
func (h *Hub) readLoop(client *Client, conn *websocket.Conn) {
	defer h.Unregister(client)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("Feed client read error", zap.String("clientID", client.ID.String()), zap.Error(err))
			}
			return
		}
	}
}

func (h *Hub) writeLoop(client *Client, conn *websocket.Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = conn.Close()
	}()

	for {
		select {
		case <-client.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		case msg := <-client.Messages():
			if !client.Wants(msg) {
				continue
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(msg); err != nil {
				h.Unregister(client)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				h.Unregister(client)
				return
			}
		}
	}
}
