package httpadapter

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // same-origin UI; tighten when serving cross-origin
	},
}

const (
	writeWait  = 5 * time.Second
	pingPeriod = 30 * time.Second
)

// handleWS streams session views to the client: one message per mutation and
// per timer tick. The reader goroutine only watches for the client closing.
func (h *Handler) handleWS(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	views, cancel, ok := h.M.Subscribe(id)
	if !ok {
		http.Error(w, "unknown session", http.StatusNotFound)
		return
	}
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		cancel()
		return
	}

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ping := time.NewTicker(pingPeriod)
	defer func() {
		ping.Stop()
		cancel()
		conn.Close()
	}()

	for {
		select {
		case v, open := <-views:
			if !open {
				return
			}
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(v); err != nil {
				return
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
