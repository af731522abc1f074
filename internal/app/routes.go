package app

import (
	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/handlers"
)

func (a *App) loadRoutes() error {
	game, err := handlers.NewGameHandler(
		a.log, config.NewWebSocket(a.config), a.config.Board, a.config.Rand(),
	)
	if err != nil {
		return err
	}

	a.router.HandleFunc("POST /game", game.NewGame)
	a.router.HandleFunc("GET /game", game.Fetch)
	a.router.HandleFunc("POST /game/move", game.MakeAMove)
	a.router.HandleFunc("GET /game/connect", game.ConnectWS)
	return nil
}
