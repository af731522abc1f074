package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vancomm/sweeper/internal/console"
	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

func newPlayCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Play in the terminal",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			rows, cols, mineCount := o.config.Board.Dimensions()
			board, err := mines.New(rows, cols, mineCount, o.config.Rand())
			if err != nil {
				return err
			}

			c := console.New(log, game.New(board), cmd.OutOrStdout())
			if err := c.Run(ctx, cmd.InOrStdin()); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
