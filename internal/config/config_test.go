package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lox/holdemsim/internal/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "session.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadSessionConfigMissingFile(t *testing.T) {
	t.Parallel()

	cfg, err := LoadSessionConfig(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSessionConfig(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestLoadSessionConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
session {
  hands               = 50
  starting_stack      = 500
  small_blind         = 5
  big_blind           = 10
  seed                = 42
  invalid_action      = "reprompt"
  decision_timeout_ms = 250
}

seat "alice" {
  strategy = "random"
}

seat "bob" {}

seat "carol" {
  strategy = "fold"
}
`)

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	s := cfg.Session
	assert.Equal(t, 50, s.Hands)
	assert.Equal(t, 500, s.StartingStack)
	assert.Equal(t, 5, s.SmallBlind)
	assert.Equal(t, 10, s.BigBlind)
	assert.Equal(t, int64(42), s.Seed)
	assert.Equal(t, game.RepromptOnInvalid, s.InvalidActionPolicy())
	assert.Equal(t, 250*time.Millisecond, s.DecisionTimeout())

	assert.Equal(t, []string{"alice", "bob", "carol"}, cfg.Names())
	assert.Equal(t, []string{"random", "call", "fold"}, cfg.Strategies())
}

func TestLoadSessionConfigDefaultsSessionBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
seat "a" { strategy = "call" }
seat "b" { strategy = "call" }
seat "c" { strategy = "call" }
`)

	cfg, err := LoadSessionConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultSessionSettings(), cfg.Session)
	assert.Len(t, cfg.Seats, 3)
}

func TestLoadSessionConfigParseError(t *testing.T) {
	t.Parallel()

	_, err := LoadSessionConfig(writeConfig(t, `session {`))
	require.ErrorContains(t, err, "failed to parse HCL file")

	_, err = LoadSessionConfig(writeConfig(t, `session { hands = "many" }`))
	require.ErrorContains(t, err, "failed to decode HCL")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*SessionConfig)
	}{
		{"one seat", func(c *SessionConfig) { c.Seats = c.Seats[:1] }},
		{"zero hands", func(c *SessionConfig) { c.Session.Hands = 0 }},
		{"negative stack", func(c *SessionConfig) { c.Session.StartingStack = -1 }},
		{"inverted blinds", func(c *SessionConfig) { c.Session.SmallBlind, c.Session.BigBlind = 4, 2 }},
		{"unknown policy", func(c *SessionConfig) { c.Session.InvalidAction = "panic" }},
		{"unknown strategy", func(c *SessionConfig) { c.Seats[1].Strategy = "shark" }},
		{"duplicate seat", func(c *SessionConfig) { c.Seats[1].Name = c.Seats[0].Name }},
		{"negative timeout", func(c *SessionConfig) { c.Session.DecisionTimeoutMS = -5 }},
		{"missing session", func(c *SessionConfig) { c.Session = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := DefaultSessionConfig()
			tt.mutate(cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}
