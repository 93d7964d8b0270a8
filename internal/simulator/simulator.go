// Package simulator runs many independent sessions and aggregates their results.
package simulator

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/holdemsim/internal/bot"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/game"
	"github.com/lox/holdemsim/internal/randutil"
	"github.com/lox/holdemsim/internal/statistics"
	"golang.org/x/sync/errgroup"
)

// Config holds configuration for running simulations
type Config struct {
	Session  *config.SessionConfig
	Sessions int
	Parallel int // Sessions run at once, defaults to GOMAXPROCS
	Seed     int64
	Clock    quartz.Clock
	Logger   *log.Logger

	// Observer is attached to every session. It is called from many goroutines when
	// Parallel is above one.
	Observer game.Observer
}

// Result holds the outcome of a simulation run.
type Result struct {
	Seed     int64
	Sessions []*game.SessionResult
	Stats    *statistics.Table
	Duration time.Duration
}

// Simulator runs sessions of poker between configured bots
type Simulator struct {
	config Config
}

// New creates a new simulator with the given configuration
func New(config Config) *Simulator {
	if config.Sessions <= 0 {
		config.Sessions = 1
	}
	if config.Parallel <= 0 {
		config.Parallel = runtime.GOMAXPROCS(0)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	if config.Logger == nil {
		config.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	config.Seed = randutil.Seed(config.Seed)
	return &Simulator{config: config}
}

// Run plays every session and returns the aggregated results. Sessions are independent
// and results are reported in session order regardless of completion order.
func (s *Simulator) Run(ctx context.Context) (*Result, error) {
	cfg := s.config.Session
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	start := s.config.Clock.Now()
	logger := s.config.Logger.WithPrefix("simulator")
	logger.Info("starting simulation",
		"sessions", s.config.Sessions,
		"parallel", s.config.Parallel,
		"seats", len(cfg.Seats),
		"seed", s.config.Seed)

	sessions := make([]*game.SessionResult, s.config.Sessions)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.Parallel)

	for i := range sessions {
		g.Go(func() error {
			res, err := s.playSession(ctx, i)
			if err != nil {
				return fmt.Errorf("session %d: %w", i, err)
			}
			sessions[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := statistics.NewTable(cfg.Names(), cfg.Session.BigBlind)
	for _, res := range sessions {
		stats.AddSession(res)
	}
	if err := stats.Validate(); err != nil {
		return nil, fmt.Errorf("statistics validation failed: %w", err)
	}

	elapsed := s.config.Clock.Since(start)
	logger.Info("simulation complete", "hands", stats.Hands, "duration", elapsed)

	return &Result{
		Seed:     s.config.Seed,
		Sessions: sessions,
		Stats:    stats,
		Duration: elapsed,
	}, nil
}

// SessionSeed returns the seed used for the n-th session of a run.
func SessionSeed(root int64, n int) int64 {
	return randutil.Derive(root, n)
}

func (s *Simulator) playSession(ctx context.Context, n int) (*game.SessionResult, error) {
	cfg := s.config.Session
	seed := SessionSeed(s.config.Seed, n)
	logger := s.config.Logger.With("session", n)

	players, err := s.players(seed, logger)
	if err != nil {
		return nil, err
	}

	opts := []game.Option{
		game.WithHands(cfg.Session.Hands),
		game.WithStartingStack(cfg.Session.StartingStack),
		game.WithBlinds(cfg.Session.SmallBlind, cfg.Session.BigBlind),
		game.WithStartingSeat(n % len(players)),
		game.WithRNG(randutil.New(seed)),
		game.WithInvalidActionPolicy(cfg.Session.InvalidActionPolicy()),
		game.WithLogger(logger),
		game.WithObserver(game.LogObserver{Logger: logger}),
	}
	if s.config.Observer != nil {
		opts = append(opts, game.WithObserver(s.config.Observer))
	}

	engine, err := game.NewEngine(players, opts...)
	if err != nil {
		return nil, err
	}
	return engine.Run(ctx)
}

// players builds one player per seat. Each seat gets its own rng stream below the
// session seed so that seats never share a sequence.
func (s *Simulator) players(seed int64, logger *log.Logger) ([]game.Player, error) {
	cfg := s.config.Session
	timeout := cfg.Session.DecisionTimeout()

	players := make([]game.Player, len(cfg.Seats))
	for i, seat := range cfg.Seats {
		p, err := bot.New(seat.Strategy, randutil.New(randutil.Derive(seed, i)))
		if err != nil {
			return nil, fmt.Errorf("seat %q: %w", seat.Name, err)
		}
		players[i] = bot.WithDeadline(p, timeout, s.config.Clock, logger.With("player", seat.Name))
	}
	return players, nil
}
