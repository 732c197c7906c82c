package transport

import (
	"context"
	"log/slog"
	"net/http"
	"sync"

	"traffic-lab/auth"
	"traffic-lab/domain"
	"traffic-lab/errors"

	"github.com/coder/websocket"
)

// Dispatcher receives the raw frames of a connection and learns when it goes away.
type Dispatcher interface {
	Dispatch(ctx context.Context, handle domain.ConnectionHandle, userID string, raw []byte)
	Disconnect(handle domain.ConnectionHandle, userID string)
}

// WSHandler upgrades authenticated requests and keeps each connection in the hub while it lives.
type WSHandler struct {
	log            *slog.Logger
	hub            *Hub
	dispatcher     Dispatcher
	config         ConnectionConfig
	originPatterns []string
	wg             sync.WaitGroup
}

func NewWSHandler(log *slog.Logger, hub *Hub, dispatcher Dispatcher, config ConnectionConfig,
	originPatterns []string) *WSHandler {
	return &WSHandler{
		log:            log.With("component", "websocket"),
		hub:            hub,
		dispatcher:     dispatcher,
		config:         config,
		originPatterns: originPatterns,
	}
}

func (h *WSHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFrom(r.Context())
	if userID == "" {
		http.Error(w, errors.ErrUnauthorized.Error(), http.StatusUnauthorized)
		return
	}

	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns:     h.originPatterns,
		InsecureSkipVerify: len(h.originPatterns) == 0,
	})
	if err != nil {
		h.log.Error("Failed to accept websocket connection", "error", err)
		return
	}

	conn := NewConnection(r.Context(), &h.wg, wsConn, userID, h.config, h.log)
	conn.SetOnMessageHandler(func(ctx context.Context, c *Connection, msg []byte) {
		h.dispatcher.Dispatch(ctx, c.Handle(), c.UserID(), msg)
	})
	conn.SetOnCloseHandler(func(c *Connection, err error) {
		h.hub.Remove(c.Handle())
		h.dispatcher.Disconnect(c.Handle(), c.UserID())
	})
	h.hub.Add(conn)

	conn.Run()
	<-conn.Done()
}

// Shutdown closes every live connection and waits for their cleanup.
func (h *WSHandler) Shutdown(reason error) {
	h.log.Info("Closing all active connections", "count", h.hub.Count())
	h.hub.CloseAll(reason)
	h.wg.Wait()
}
