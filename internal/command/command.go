// Package command implements the line-oriented text protocol shared by the
// terminal and WebSocket front ends:
//
//	o ROW COL   reveal a cell
//	f ROW COL   toggle a flag
//	n           new game with the current board parameters
//	g           fetch, changes nothing
//
// A message may carry several commands separated by newlines.
package command

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/vancomm/sweeper/internal/game"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrArgumentCount  = errors.New("invalid number of arguments")
	ErrArgument       = errors.New("argument must be an int")
)

type Kind int

const (
	Fetch Kind = iota
	Open
	Flag
	New
)

func (k Kind) String() string {
	switch k {
	case Fetch:
		return "g"
	case Open:
		return "o"
	case Flag:
		return "f"
	case New:
		return "n"
	}
	return "?"
}

type Command struct {
	Kind  Kind
	Point game.Point
}

func (c Command) String() string {
	if c.Kind == Open || c.Kind == Flag {
		return fmt.Sprintf("%s %d %d", c.Kind, c.Point.Row, c.Point.Col)
	}
	return c.Kind.String()
}

// Maps known commands to their kind and number of arguments
var known = map[string]struct {
	kind  Kind
	nargs int
}{
	"g": {Fetch, 0},
	"o": {Open, 2},
	"f": {Flag, 2},
	"n": {New, 0},
}

func parsePoint(args []string) (p game.Point, err error) {
	if p.Row, err = strconv.Atoi(args[0]); err != nil {
		return p, fmt.Errorf("row: %w", ErrArgument)
	}
	if p.Col, err = strconv.Atoi(args[1]); err != nil {
		return p, fmt.Errorf("col: %w", ErrArgument)
	}
	return p, nil
}

// Parse reads a single command line.
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}
	k, ok := known[parts[0]]
	if !ok {
		return Command{}, fmt.Errorf("%w %q", ErrUnknownCommand, parts[0])
	}
	if k.nargs != len(parts)-1 {
		return Command{}, fmt.Errorf("%w: %q takes %d, got %d",
			ErrArgumentCount, parts[0], k.nargs, len(parts)-1)
	}
	cmd := Command{Kind: k.kind}
	if k.nargs == 2 {
		p, err := parsePoint(parts[1:])
		if err != nil {
			return Command{}, err
		}
		cmd.Point = p
	}
	return cmd, nil
}

// Execute applies cmd to the session. Positions outside the board are
// absorbed by the controller and report game.Continue.
func Execute(ctrl *game.Controller, cmd Command) (game.Outcome, error) {
	switch cmd.Kind {
	case Fetch:
		return game.Continue, nil
	case Open:
		return ctrl.Reveal(cmd.Point), nil
	case Flag:
		return ctrl.ToggleFlag(cmd.Point), nil
	case New:
		b := ctrl.Board()
		return game.Continue, ctrl.Restart(b.Rows(), b.Cols(), b.MineCount())
	}
	return game.Continue, fmt.Errorf("%w: kind %d", ErrUnknownCommand, cmd.Kind)
}

// LineError reports the 1-based line of a batch that failed.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error { return e.Err }

// ExecuteAll runs every non-blank line of text in order. It stops at the
// first error, returned as a *LineError, or at the first outcome that ends
// the game; the remaining lines are dropped.
func ExecuteAll(ctrl *game.Controller, text string) (game.Outcome, error) {
	outcome := game.Continue
	for i, line := range byLine(text) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		cmd, err := Parse(line)
		if err != nil {
			return outcome, &LineError{Line: i + 1, Err: err}
		}
		if outcome, err = Execute(ctrl, cmd); err != nil {
			return outcome, &LineError{Line: i + 1, Err: err}
		}
		if outcome != game.Continue {
			break
		}
	}
	return outcome, nil
}

func byLine(s string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var line string
		for found {
			line, s, found = strings.Cut(s, "\n")
			if !yield(i, strings.TrimSuffix(line, "\r")) {
				return
			}
			i++
		}
	}
}
