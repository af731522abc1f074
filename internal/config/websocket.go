package config

import (
	"net/http"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader websocket.Upgrader
}

// NewWebSocket builds the upgrader for game connections. Browser origins are
// checked against the configured allow list; requests without an Origin
// header are always accepted.
func NewWebSocket(c Config) *WebSocket {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			return origin == "" || c.AllowsOrigin(origin)
		},
	}

	return &WebSocket{
		Upgrader: upgrader,
	}
}
