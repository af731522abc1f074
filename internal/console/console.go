// Package console plays a game in a terminal using the text command
// protocol, one command per line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/sweeper/internal/command"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/viewmodel"
)

const help = "commands: o ROW COL (open), f ROW COL (flag), n (new game), q (quit)"

type Console struct {
	log  logrus.FieldLogger
	ctrl *game.Controller
	out  io.Writer
}

func New(log logrus.FieldLogger, ctrl *game.Controller, out io.Writer) *Console {
	return &Console{log: log, ctrl: ctrl, out: out}
}

func (c *Console) draw() {
	fmt.Fprint(c.out, viewmodel.NewGameView(c.ctrl).Text())
}

// Run reads commands from in until "q", end of input or ctx is done.
func (c *Console) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	errc := make(chan error, 1)
	go func() {
		defer close(errc)
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		errc <- scanner.Err()
	}()

	fmt.Fprintln(c.out, help)
	c.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				return <-errc
			}
			line = strings.TrimSpace(line)
			switch line {
			case "":
				continue
			case "q":
				return nil
			case "h", "?":
				fmt.Fprintln(c.out, help)
				continue
			}
			c.handle(line)
		}
	}
}

func (c *Console) handle(line string) {
	c.log.Debug("> ", line)
	outcome, err := command.ExecuteAll(c.ctrl, line)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	c.draw()
	switch outcome {
	case game.Win:
		fmt.Fprintln(c.out, "you won! n to play again, q to quit")
	case game.Loss:
		fmt.Fprintln(c.out, "boom! n to play again, q to quit")
	}
}
