package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
)

func dialGame(t *testing.T, h *GameHandler) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(newTestMux(h))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/game/connect"
	c, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	t.Cleanup(func() { c.Close() })
	return c
}

func TestConnectWS(t *testing.T) {
	h := newTestHandler(t, config.Board{Cols: 3, MineCount: 1})
	c := dialGame(t, h)

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("g")))
	var res moveResult
	require.NoError(t, c.ReadJSON(&res))
	assert.Equal(t, "continue", res.Outcome)
	assert.Equal(t, game.Ready, res.Game.Phase)

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("f 0 0\no 2 2\n")))
	res = moveResult{}
	require.NoError(t, c.ReadJSON(&res))
	assert.Equal(t, "won", res.Outcome)
	assert.True(t, res.Game.Ended)

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("n")))
	res = moveResult{}
	require.NoError(t, c.ReadJSON(&res))
	assert.Equal(t, game.Ready, res.Game.Phase)
	assert.Equal(t, 3, res.Game.Cols)
}

func TestConnectWSCommandError(t *testing.T) {
	h := newTestHandler(t, config.Board{Cols: 3, MineCount: 1})
	c := dialGame(t, h)

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("o 1 1\nzap")))
	var reply CommandErrorDTO
	require.NoError(t, c.ReadJSON(&reply))
	assert.Equal(t, 2, reply.Line)
	assert.Contains(t, reply.Error, "unknown command")

	require.NoError(t, c.WriteMessage(websocket.TextMessage, []byte("g")), "connection stays open")
	var res moveResult
	require.NoError(t, c.ReadJSON(&res))
	assert.Equal(t, game.Playing, res.Game.Phase, "lines before the error were applied")
}

func TestConnectWSRejectsBinary(t *testing.T) {
	h := newTestHandler(t, config.Board{Cols: 3, MineCount: 1})
	c := dialGame(t, h)

	require.NoError(t, c.WriteMessage(websocket.BinaryMessage, []byte{1, 2}))
	_, _, err := c.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseUnsupportedData), "got %v", err)
}

func TestConnectWSOrigin(t *testing.T) {
	c := config.Default()
	c.AllowedOrigins = []string{"https://mines.example"}
	logger := newTestHandler(t, config.Board{Cols: 3, MineCount: 1}).log
	h, err := NewGameHandler(logger, config.NewWebSocket(c), config.Board{Cols: 3, MineCount: 1}, inOrder{})
	require.NoError(t, err)

	srv := httptest.NewServer(newTestMux(h))
	defer srv.Close()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/game/connect"

	header := http.Header{"Origin": {"https://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(url, header)
	require.Error(t, err)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header.Set("Origin", "https://mines.example")
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	conn.Close()
}
