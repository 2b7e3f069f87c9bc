package main

import (
	"bytes"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hello-gfx/internal/demos"
)

func TestParseFlags(t *testing.T) {
	opts, err := parseFlags(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "first-window", opts.demo)
	assert.Empty(t, opts.configPath)
	assert.False(t, opts.list)

	opts, err = parseFlags([]string{"-demo", "snake", "-config", "a.toml", "-log-level", "debug"}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, options{demo: "snake", configPath: "a.toml", logLevel: "debug"}, opts)

	_, err = parseFlags([]string{"-h"}, io.Discard)
	assert.ErrorIs(t, err, flag.ErrHelp)

	_, err = parseFlags([]string{"snake"}, io.Discard)
	assert.ErrorContains(t, err, "unexpected arguments")
}

func TestPrintDemos(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, printDemos(&buf))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, len(demos.Names()))
	assert.True(t, strings.HasPrefix(lines[0], "first-window "))
}

func TestSetup(t *testing.T) {
	cfg, logger, factory, err := setup(options{demo: "snake"}, io.Discard)
	require.NoError(t, err)
	assert.NotNil(t, logger)
	assert.NotNil(t, factory)
	assert.Equal(t, "hello-gfx - snake", cfg.Window.Title)
}

func TestSetupErrors(t *testing.T) {
	_, _, _, err := setup(options{demo: "tetris"}, io.Discard)
	assert.ErrorIs(t, err, demos.ErrUnknownDemo)

	_, _, _, err = setup(options{demo: "snake", logLevel: "loud"}, io.Discard)
	assert.Error(t, err)

	_, _, _, err = setup(options{demo: "snake", configPath: filepath.Join(t.TempDir(), "missing.toml")}, io.Discard)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSetupConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hello.toml")
	require.NoError(t, os.WriteFile(path, []byte("[window]\ntitle = \"custom\"\n[log]\nlevel = \"debug\"\n"), 0o644))

	cfg, logger, _, err := setup(options{demo: "arena", configPath: path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, "custom", cfg.Window.Title, "a configured title is kept")
	assert.True(t, logger.Enabled(t.Context(), slog.LevelDebug))
}
