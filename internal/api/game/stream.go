package game

import (
	"log"
	"net/http"
	"time"

	"plink_backend/internal/converter"

	"github.com/gorilla/websocket"
)

const writeTimeout = 10 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// StateStream upgrades to a websocket and pushes every committed game-state
// snapshot, starting with the current one. A consumer that falls behind only
// skips intermediate snapshots; each write is a full state, not a delta.
func (h *Handler) StateStream(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("WS Upgrade Error:", err)
		return
	}
	defer conn.Close()

	ch, cancel, err := h.game.Watch(r.Context())
	if err != nil {
		log.Println("WS Watch Error:", err)
		return
	}
	defer cancel()

	closed := make(chan struct{})

	// read pump exists only to notice the peer going away
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case <-r.Context().Done():
			return
		case st, ok := <-ch:
			if !ok {
				return
			}
			view := converter.ToGameStateView(st)
			_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := conn.WriteJSON(view); err != nil {
				return
			}
		}
	}
}
