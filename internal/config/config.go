package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/maphash"
	"math/rand/v2"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"github.com/vancomm/sweeper/internal/game"
	"github.com/vancomm/sweeper/internal/mines"
)

const (
	ModeDevelopment = "development"
	ModeProduction  = "production"
)

// DefaultMaxCells bounds the board size when Board.MaxCells is not set.
const DefaultMaxCells = 100 * 100

var ErrInvalidConfig = errors.New("invalid config")

type Board struct {
	Cols      int `json:"cols" yaml:"cols"`
	Rows      int `json:"rows,omitempty" yaml:"rows,omitempty"`
	MineCount int `json:"mine_count" yaml:"mine_count"`
	MaxHeight int `json:"max_height,omitempty" yaml:"max_height,omitempty"`
	CellSize  int `json:"cell_size,omitempty" yaml:"cell_size,omitempty"`
	MaxCells  int `json:"max_cells,omitempty" yaml:"max_cells,omitempty"`
}

func (b Board) Viewport() game.Viewport {
	return game.Viewport{MaxHeight: b.MaxHeight, CellSize: b.CellSize}
}

// Dimensions resolves the final board size, deriving rows when they are not
// fixed.
func (b Board) Dimensions() (rows, cols, mineCount int) {
	return game.ComputeRows(b.Cols, b.Rows, b.Viewport()), b.Cols, b.MineCount
}

func (b Board) maxCells() int {
	if b.MaxCells > 0 {
		return b.MaxCells
	}
	return DefaultMaxCells
}

func (b Board) Validate() error {
	rows, cols, mineCount := b.Dimensions()
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d",
			mines.ErrInvalidConfiguration, rows, cols)
	}
	if limit := b.maxCells(); rows > limit/cols {
		return fmt.Errorf("%w: a %dx%d board exceeds %d cells",
			mines.ErrInvalidConfiguration, rows, cols, limit)
	}
	if mineCount <= 0 || mineCount >= rows*cols {
		return fmt.Errorf("%w: mine count must be in (0, %d) for a %dx%d board, got %d",
			mines.ErrInvalidConfiguration, rows*cols, rows, cols, mineCount)
	}
	return nil
}

type Log struct {
	Level      string `json:"level,omitempty" yaml:"level,omitempty"`
	File       string `json:"file,omitempty" yaml:"file,omitempty"`
	MaxSizeMB  int    `json:"max_size_mb,omitempty" yaml:"max_size_mb,omitempty"`
	MaxBackups int    `json:"max_backups,omitempty" yaml:"max_backups,omitempty"`
	MaxAgeDays int    `json:"max_age_days,omitempty" yaml:"max_age_days,omitempty"`
}

type Config struct {
	Mode            string   `json:"mode" yaml:"mode"`
	Addr            string   `json:"addr" yaml:"addr"`
	Seed            uint64   `json:"seed,omitempty" yaml:"seed,omitempty"`
	ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	AllowedOrigins  []string `json:"allowed_origins,omitempty" yaml:"allowed_origins,omitempty"`
	Board           Board    `json:"board" yaml:"board"`
	Log             Log      `json:"log" yaml:"log"`
}

// Default is the classic 9 column board with 10 mines, served on :8080.
func Default() Config {
	return Config{
		Mode:            ModeDevelopment,
		Addr:            ":8080",
		ShutdownTimeout: Duration{5 * time.Second},
		Board:           Board{Cols: 9, MineCount: 10},
		Log:             Log{MaxSizeMB: 50, MaxBackups: 3, MaxAgeDays: 28},
	}
}

// Read overlays the file at path onto config. Files ending in .yaml or .yml
// are YAML, anything else is JSON.
func Read(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.UnmarshalStrict(b, config)
	default:
		err = json.Unmarshal(b, config)
	}
	if err != nil {
		return fmt.Errorf("unable to parse config %s: %w", path, err)
	}
	return nil
}

func (c Config) Validate() error {
	if c.Mode != ModeDevelopment && c.Mode != ModeProduction {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	if c.Addr == "" {
		return fmt.Errorf("%w: empty addr", ErrInvalidConfig)
	}
	if c.ShutdownTimeout.Duration < 0 {
		return fmt.Errorf("%w: negative shutdown timeout", ErrInvalidConfig)
	}
	if c.Log.Level != "" {
		if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
	}
	return c.Board.Validate()
}

func (c Config) Production() bool {
	return c.Mode == ModeProduction
}

func (c Config) Development() bool {
	return c.Mode != ModeProduction
}

// AllowsOrigin reports whether browser requests from origin are accepted.
// With no allowed origins configured every origin is accepted.
func (c Config) AllowsOrigin(origin string) bool {
	return len(c.AllowedOrigins) == 0 ||
		slices.Contains(c.AllowedOrigins, "*") ||
		slices.Contains(c.AllowedOrigins, origin)
}

// Rand returns the mine placement source. Seed 0 picks a random seed.
func (c Config) Rand() *rand.Rand {
	if c.Seed != 0 {
		return rand.New(rand.NewPCG(c.Seed, c.Seed))
	}
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

func (c Config) Fields() logrus.Fields {
	rows, cols, mineCount := c.Board.Dimensions()
	return map[string]any{
		"mode":             c.Mode,
		"addr":             c.Addr,
		"seed":             c.Seed,
		"shutdown_timeout": c.ShutdownTimeout.String(),
		"allowed_origins":  c.AllowedOrigins,
		"board_rows":       rows,
		"board_cols":       cols,
		"board_mine_count": mineCount,
		"log_level":        c.Log.Level,
		"log_file":         c.Log.File,
	}
}
