package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// LoadEnv loads the given dotenv files (".env" when none are given) into the
// process environment, then applies MINES_* variables on top of config.
// Missing dotenv files are skipped; variables already set in the
// environment win over dotenv entries.
func LoadEnv(config *Config, files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("unable to load %s: %w", f, err)
		}
	}

	lookupString("MINES_MODE", &config.Mode)
	lookupString("MINES_ADDR", &config.Addr)
	lookupString("MINES_LOG_LEVEL", &config.Log.Level)
	lookupString("MINES_LOG_FILE", &config.Log.File)

	if v, ok := os.LookupEnv("MINES_SEED"); ok {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("unable to convert MINES_SEED to uint: %w", err)
		}
		config.Seed = seed
	}
	for key, dst := range map[string]*int{
		"MINES_COLS":       &config.Board.Cols,
		"MINES_ROWS":       &config.Board.Rows,
		"MINES_MINE_COUNT": &config.Board.MineCount,
		"MINES_MAX_CELLS":  &config.Board.MaxCells,
	} {
		if err := lookupInt(key, dst); err != nil {
			return err
		}
	}
	return nil
}

func lookupString(key string, dst *string) {
	if v, ok := os.LookupEnv(key); ok {
		*dst = v
	}
}

func lookupInt(key string, dst *int) error {
	v, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	*dst = n
	return nil
}
