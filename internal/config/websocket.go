package config

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

type WebSocket struct {
	Upgrader     websocket.Upgrader
	WriteTimeout time.Duration
}

func NewWebSocket() (*WebSocket, error) {
	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	timeout := 10 * time.Second
	if s, ok := lookupNonEmpty("WS_WRITE_TIMEOUT"); ok {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, err
		}
		timeout = d
	}

	ws := &WebSocket{
		Upgrader:     upgrader,
		WriteTimeout: timeout,
	}

	return ws, nil
}
