package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"

	"github.com/vancomm/sweeper/internal/command"
)

// execute runs one message worth of commands and builds the reply.
func (g *GameHandler) execute(text string) any {
	g.mu.Lock()
	defer g.mu.Unlock()

	outcome, err := command.ExecuteAll(g.ctrl, text)
	if err != nil {
		reply := CommandErrorDTO{Error: err.Error()}
		var lineErr *command.LineError
		if errors.As(err, &lineErr) {
			reply.Error = lineErr.Err.Error()
			reply.Line = lineErr.Line
		}
		return reply
	}
	return MoveResultDTO{Outcome: outcome, Game: g.view()}
}

func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	c, err := g.ws.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.log.WithError(err).Warn("upgrade")
		return
	}
	defer c.Close()

	for {
		mt, message, err := c.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				g.log.WithError(err).Warn("read")
			}
			return
		}
		if mt != websocket.TextMessage {
			_ = c.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseUnsupportedData, "text messages only"))
			return
		}
		text := strings.TrimSpace(string(message))
		g.log.Debug("\t> ", text)

		if err := c.WriteJSON(g.execute(text)); err != nil {
			g.log.WithError(err).Warn("write")
			return
		}
		g.log.Debug("\t< game state")
	}
}
