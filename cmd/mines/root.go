package main

import (
	"github.com/spf13/cobra"

	"github.com/vancomm/sweeper/internal/config"
)

type options struct {
	configPath string
	envFile    string
	cols       int
	rows       int
	mines      int
	seed       uint64

	config config.Config
}

// load resolves the config: defaults, then the config file, then the
// environment, then command line flags.
func (o *options) load(cmd *cobra.Command) error {
	o.config = config.Default()
	if o.configPath != "" {
		if err := config.Read(o.configPath, &o.config); err != nil {
			return err
		}
	}
	var envFiles []string
	if o.envFile != "" {
		envFiles = append(envFiles, o.envFile)
	}
	if err := config.LoadEnv(&o.config, envFiles...); err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("cols") {
		o.config.Board.Cols = o.cols
		if !flags.Changed("rows") {
			o.config.Board.Rows = 0
		}
	}
	if flags.Changed("rows") {
		o.config.Board.Rows = o.rows
	}
	if flags.Changed("mines") {
		o.config.Board.MineCount = o.mines
	}
	if flags.Changed("seed") {
		o.config.Seed = o.seed
	}
	return o.config.Validate()
}

func newRootCmd(o *options) *cobra.Command {
	root := &cobra.Command{
		Use:   "mines",
		Short: "Single-player Minesweeper",
		Long: `mines is a Minesweeper game played in the terminal or served over
HTTP and WebSocket.

Play in the terminal
	mines play --cols 16 --mines 40

Serve the game API
	mines serve -c config.yaml
`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.load(cmd); err != nil {
				return err
			}
			if err := setupLogging(o.config); err != nil {
				return err
			}
			log.Info("starting up, mode = ", o.config.Mode)
			log.WithFields(o.config.Fields()).Debug("config")
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVarP(&o.configPath, "config", "c", "", "config file path (.json, .yaml or .yml)")
	pf.StringVar(&o.envFile, "env", "", "dotenv file to load (default .env)")
	pf.IntVar(&o.cols, "cols", 9, "width of the board, in cells")
	pf.IntVar(&o.rows, "rows", 0, "height of the board, in cells (default same as cols)")
	pf.IntVarP(&o.mines, "mines", "m", 10, "number of mines to place on the board")
	pf.Uint64Var(&o.seed, "seed", 0, "mine placement seed, 0 for random")

	root.AddCommand(newServeCmd(o), newPlayCmd(o))
	return root
}
