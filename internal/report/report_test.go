package report

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/simulator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runSimulation(t *testing.T) (*simulator.Result, *config.SessionConfig) {
	t.Helper()

	cfg := config.DefaultSessionConfig()
	cfg.Seats[1].Strategy = "random"
	sim := simulator.New(simulator.Config{
		Session:  cfg,
		Sessions: 2,
		Seed:     5,
		Logger:   log.NewWithOptions(io.Discard, log.Options{}),
	})
	res, err := sim.Run(context.Background())
	require.NoError(t, err)
	return res, cfg
}

func TestBuild(t *testing.T) {
	t.Parallel()

	res, cfg := runSimulation(t)
	r := Build(res, cfg.Strategies())

	assert.Equal(t, int64(5), r.Seed)
	assert.Equal(t, 2, r.Sessions)
	assert.Equal(t, res.Stats.Hands, r.HandsPlayed)
	require.Len(t, r.Seats, 2)
	assert.Equal(t, "alice", r.Seats[0].Name)
	assert.Equal(t, "random", r.Seats[1].Strategy)
	assert.Equal(t, 0, r.Seats[0].NetChips+r.Seats[1].NetChips)
	assert.LessOrEqual(t, r.Seats[0].CI95[0], r.Seats[0].CI95[1])
	assert.Len(t, r.SessionStacks, 2)
}

func TestWriteFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	want := Report{Seed: 1, Sessions: 1, Seats: []SeatReport{{Name: "a", NetChips: 3}}}

	require.NoError(t, WriteFile(path, want))
	require.NoError(t, WriteFile(path, want), "overwrites an existing report")

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var got Report
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, want, got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o644), info.Mode().Perm())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "no temp files left behind")
}

func TestWriteFileMissingDirectory(t *testing.T) {
	t.Parallel()

	err := WriteFile(filepath.Join(t.TempDir(), "missing", "report.json"), Report{})
	require.ErrorContains(t, err, "failed to create temp file")
}
