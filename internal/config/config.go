// Package config loads session configuration from HCL files.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/game"
)

// ErrInvalid is returned by Validate for unusable configuration.
var ErrInvalid = errors.New("invalid config")

// SessionConfig is the complete configuration of a simulation run.
type SessionConfig struct {
	Session *SessionSettings `hcl:"session,block"`
	Seats   []SeatConfig     `hcl:"seat,block"`
}

// SessionSettings holds the parameters shared by every session.
type SessionSettings struct {
	Hands             int    `hcl:"hands,optional"`
	StartingStack     int    `hcl:"starting_stack,optional"`
	SmallBlind        int    `hcl:"small_blind,optional"`
	BigBlind          int    `hcl:"big_blind,optional"`
	Seed              int64  `hcl:"seed,optional"`
	InvalidAction     string `hcl:"invalid_action,optional"`
	DecisionTimeoutMS int    `hcl:"decision_timeout_ms,optional"`
}

// SeatConfig defines one seat at the table.
type SeatConfig struct {
	Name     string `hcl:"name,label"`
	Strategy string `hcl:"strategy,optional"`
}

func defaultSessionSettings() *SessionSettings {
	return &SessionSettings{
		Hands:         5,
		StartingStack: 200,
		SmallBlind:    1,
		BigBlind:      2,
		InvalidAction: game.FoldOnInvalid.String(),
	}
}

// DefaultSessionConfig returns two calling stations playing five hands.
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Session: defaultSessionSettings(),
		Seats: []SeatConfig{
			{Name: "alice", Strategy: "call"},
			{Name: "bob", Strategy: "call"},
		},
	}
}

// LoadSessionConfig loads configuration from an HCL file. A missing file yields
// DefaultSessionConfig.
func LoadSessionConfig(filename string) (*SessionConfig, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return DefaultSessionConfig(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var config SessionConfig
	diags = gohcl.DecodeBody(file.Body, nil, &config)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	config.applyDefaults()
	return &config, nil
}

func (c *SessionConfig) applyDefaults() {
	defaults := defaultSessionSettings()
	if c.Session == nil {
		c.Session = defaults
	}

	s := c.Session
	if s.Hands == 0 {
		s.Hands = defaults.Hands
	}
	if s.StartingStack == 0 {
		s.StartingStack = defaults.StartingStack
	}
	if s.SmallBlind == 0 && s.BigBlind == 0 {
		s.SmallBlind, s.BigBlind = defaults.SmallBlind, defaults.BigBlind
	}
	if s.InvalidAction == "" {
		s.InvalidAction = defaults.InvalidAction
	}

	if len(c.Seats) == 0 {
		c.Seats = DefaultSessionConfig().Seats
	}
	for i := range c.Seats {
		if c.Seats[i].Strategy == "" {
			c.Seats[i].Strategy = "call"
		}
	}
}

// Validate checks the configuration can start a session.
func (c *SessionConfig) Validate() error {
	s := c.Session
	if s == nil {
		return fmt.Errorf("%w: missing session block", ErrInvalid)
	}
	if n := len(c.Seats); n < 2 || n > 10 {
		return fmt.Errorf("%w: %d seats, need 2 to 10", ErrInvalid, n)
	}
	if s.Hands <= 0 {
		return fmt.Errorf("%w: hands must be positive, got %d", ErrInvalid, s.Hands)
	}
	if s.StartingStack <= 0 {
		return fmt.Errorf("%w: starting stack must be positive, got %d", ErrInvalid, s.StartingStack)
	}
	if s.SmallBlind <= 0 || s.BigBlind <= s.SmallBlind {
		return fmt.Errorf("%w: blinds must satisfy 0 < small < big, got %d/%d", ErrInvalid, s.SmallBlind, s.BigBlind)
	}
	if s.DecisionTimeoutMS < 0 {
		return fmt.Errorf("%w: negative decision timeout", ErrInvalid)
	}
	if _, err := game.ParseInvalidActionPolicy(s.InvalidAction); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	names := make(map[string]bool, len(c.Seats))
	for _, seat := range c.Seats {
		if names[seat.Name] {
			return fmt.Errorf("%w: duplicate seat %q", ErrInvalid, seat.Name)
		}
		names[seat.Name] = true
		if _, err := bot.New(seat.Strategy, nil); err != nil {
			return fmt.Errorf("%w: seat %q: %w", ErrInvalid, seat.Name, err)
		}
	}
	return nil
}

// InvalidActionPolicy returns the parsed invalid action policy.
func (s *SessionSettings) InvalidActionPolicy() game.InvalidActionPolicy {
	p, _ := game.ParseInvalidActionPolicy(s.InvalidAction)
	return p
}

// DecisionTimeout returns the per-decision deadline, zero when disabled.
func (s *SessionSettings) DecisionTimeout() time.Duration {
	return time.Duration(s.DecisionTimeoutMS) * time.Millisecond
}

// Strategies returns each seat's strategy in seat order.
func (c *SessionConfig) Strategies() []string {
	out := make([]string, len(c.Seats))
	for i, seat := range c.Seats {
		out[i] = seat.Strategy
	}
	return out
}

// Names returns each seat's name in seat order.
func (c *SessionConfig) Names() []string {
	out := make([]string, len(c.Seats))
	for i, seat := range c.Seats {
		out[i] = seat.Name
	}
	return out
}
