package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vancomm/minefield/internal/command"
	"github.com/vancomm/minefield/internal/session"
)

// wsReply is sent after every text message: the state after the last
// command that applied, and the first command error if any.
type wsReply struct {
	Error string            `json:"error,omitempty"`
	Game  *session.Snapshot `json:"game"`
}

func (g GameHandler) execute(text string) wsReply {
	var reply wsReply
	for line := range command.Lines(text) {
		cmd, err := command.Parse(line)
		if err == nil {
			var snap *session.Snapshot
			if snap, err = g.session.Execute(cmd); err == nil {
				reply.Game = snap
				continue
			}
		}
		g.logger.Debug("unable to process command",
			slog.String("command", line), slog.Any("error", err))
		reply.Error = err.Error()
		break
	}
	if reply.Game == nil {
		reply.Game = g.session.Snapshot()
	}
	return reply
}

func (g GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err,
				websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			break
		}
		if mt != websocket.TextMessage {
			break
		}

		text := strings.TrimSpace(string(message))
		g.logger.Debug("\t> " + text)

		reply := g.execute(text)

		c.SetWriteDeadline(time.Now().Add(g.ws.WriteTimeout))
		if err := c.WriteJSON(reply); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			break
		}
		g.logger.Debug("\t< <game data>")
	}
}
