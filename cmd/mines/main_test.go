package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	log.SetOutput(&bytes.Buffer{})
	os.Exit(m.Run())
}

func execute(t *testing.T, o *options, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(o)
	var out bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestPlay(t *testing.T) {
	out, err := execute(t, &options{}, "f 0 0\nq\n", "play", "--cols", "4", "--mines", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "   0 1 2 3\n")
	assert.Contains(t, out, " 0 F # # #\n")
	assert.Contains(t, out, "ready, mines left: 1\n")
}

func TestPlayRowsFlag(t *testing.T) {
	out, err := execute(t, &options{}, "", "play", "--cols", "5", "--rows", "2", "--mines", "1")
	require.NoError(t, err)
	assert.Contains(t, out, " 1 # # # # #\n")
	assert.NotContains(t, out, " 2 # # # # #\n")
}

func TestConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"mode: production\naddr: \":9000\"\nboard:\n  cols: 16\n  rows: 8\n  mine_count: 40\nlog:\n  level: warn\n",
	), 0o600))
	t.Setenv("MINES_MINE_COUNT", "30")

	o := &options{}
	_, err := execute(t, o, "q\n", "play", "-c", path, "--cols", "12")
	require.NoError(t, err)

	assert.True(t, o.config.Production())
	assert.Equal(t, ":9000", o.config.Addr)
	assert.Equal(t, 30, o.config.Board.MineCount, "env overrides file")
	rows, cols, _ := o.config.Board.Dimensions()
	assert.Equal(t, 12, cols, "flag overrides file")
	assert.Equal(t, 12, rows, "cols flag makes the board square again")
	assert.Equal(t, logrus.WarnLevel, log.GetLevel())
}

func TestInvalidBoard(t *testing.T) {
	_, err := execute(t, &options{}, "", "play", "--cols", "3", "--mines", "9")
	require.Error(t, err)
}

func TestSetupLoggingFile(t *testing.T) {
	o := &options{}
	_, err := execute(t, o, "q\n", "play")
	require.NoError(t, err)
	o.config.Log.File = filepath.Join(t.TempDir(), "mines.log")

	require.NoError(t, setupLogging(o.config))
	t.Cleanup(func() { log.ReplaceHooks(make(logrus.LevelHooks)) })
	assert.Equal(t, logrus.DebugLevel, log.GetLevel())

	log.Info("to file")
	data, err := os.ReadFile(o.config.Log.File)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"to file"`)
}
