package handlers

import (
	"errors"
	"net/http"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/config"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
	"github.com/vancomm/sweeper/internal/viewmodel"
)

// GameHandler serves the single game session of the process. Requests are
// serialized on mu since the controller is not safe for concurrent use.
type GameHandler struct {
	log      logrus.FieldLogger
	ws       *config.WebSocket
	defaults config.Board

	mu   sync.Mutex
	ctrl *game.Controller
}

func NewGameHandler(
	log logrus.FieldLogger,
	ws *config.WebSocket,
	defaults config.Board,
	s mines.Shuffler,
) (*GameHandler, error) {
	rows, cols, mineCount := defaults.Dimensions()
	board, err := mines.New(rows, cols, mineCount, s)
	if err != nil {
		return nil, err
	}
	return &GameHandler{
		log:      log,
		ws:       ws,
		defaults: defaults,
		ctrl:     game.New(board),
	}, nil
}

func (g *GameHandler) view() viewmodel.GameView {
	return viewmodel.NewGameView(g.ctrl)
}

func (g *GameHandler) NewGame(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseNewGameDTO(r.URL.Query())
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	params := g.defaults
	if dto.Cols != 0 {
		params.Cols = dto.Cols
		params.Rows = 0
	}
	if dto.Rows != 0 {
		params.Rows = dto.Rows
	}
	if dto.MineCount != 0 {
		params.MineCount = dto.MineCount
	}
	if err := params.Validate(); err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}
	rows, cols, mineCount := params.Dimensions()

	g.mu.Lock()
	defer g.mu.Unlock()

	if err := g.ctrl.Restart(rows, cols, mineCount); err != nil {
		if errors.Is(err, mines.ErrInvalidConfiguration) {
			sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
			return
		}
		g.log.WithError(err).Error("unable to start a new game")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	g.log.WithFields(logrus.Fields{
		"rows":       rows,
		"cols":       cols,
		"mine_count": mineCount,
	}).Debug("new game")

	sendJSONOrLog(w, g.log, g.view())
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	g.mu.Lock()
	defer g.mu.Unlock()

	sendJSONOrLog(w, g.log, g.view())
}

func (g *GameHandler) MakeAMove(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	move, err := ParseGameMove(query.Get("move"))
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	p, err := ParsePoint(query)
	if err != nil {
		sendErrorOrLog(w, g.log, http.StatusBadRequest, err)
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	var outcome game.Outcome
	switch move {
	case Open:
		outcome = g.ctrl.Reveal(p)
	case Flag:
		outcome = g.ctrl.ToggleFlag(p)
	}

	if outcome != game.Continue {
		g.log.WithField("outcome", outcome).Info("game over")
	}

	sendJSONOrLog(w, g.log, MoveResultDTO{Outcome: outcome, Game: g.view()})
}
