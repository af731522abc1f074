package handlers

import (
	"fmt"
	"strings"

	"github.com/gorilla/schema"

	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/viewmodel"
)

var decoder = func() *schema.Decoder {
	dec := schema.NewDecoder()
	dec.IgnoreUnknownKeys(true)
	return dec
}()

// NewGameDTO carries the optional board parameters of a new game. Zero
// fields fall back to the server defaults.
type NewGameDTO struct {
	Cols      int `schema:"cols"`
	Rows      int `schema:"rows"`
	MineCount int `schema:"mine_count"`
}

func ParseNewGameDTO(src map[string][]string) (NewGameDTO, error) {
	var dto NewGameDTO
	err := decoder.Decode(&dto, src)
	return dto, err
}

func ParsePoint(src map[string][]string) (game.Point, error) {
	var p game.Point
	err := decoder.Decode(&p, src)
	return p, err
}

type GameMove uint8

const (
	Open GameMove = iota + 1
	Flag
)

func (m GameMove) String() string {
	switch m {
	case Open:
		return "open"
	case Flag:
		return "flag"
	}
	return fmt.Sprintf("GameMove(%d)", m)
}

var ErrBadMove = fmt.Errorf("move must be one of '%s', '%s'", Open, Flag)

func ParseGameMove(s string) (move GameMove, err error) {
	switch strings.ToLower(s) {
	case "open":
		move = Open
	case "flag":
		move = Flag
	default:
		err = ErrBadMove
	}
	return
}

type MoveResultDTO struct {
	Outcome game.Outcome       `json:"outcome"`
	Game    viewmodel.GameView `json:"game"`
}

type CommandErrorDTO struct {
	Error string `json:"error"`
	Line  int    `json:"line,omitempty"`
}
