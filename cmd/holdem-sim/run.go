package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/charmbracelet/log"
	"github.com/lox/holdemsim/internal/config"
	"github.com/lox/holdemsim/internal/report"
	"github.com/lox/holdemsim/internal/simulator"
)

type RunCmd struct {
	Config   string   `short:"c" default:"holdem.hcl" type:"path" env:"HOLDEM_CONFIG" help:"HCL session config (defaults are used if missing)"`
	Hands    int      `short:"n" env:"HOLDEM_HANDS" help:"Hands per session, overrides the config"`
	Sessions int      `default:"1" env:"HOLDEM_SESSIONS" help:"Number of independent sessions"`
	Parallel int      `short:"p" env:"HOLDEM_PARALLEL" help:"Sessions to run at once (0 for GOMAXPROCS)"`
	Seed     int64    `env:"HOLDEM_SEED" help:"Root RNG seed, overrides the config (0 for random)"`
	LogLevel string   `default:"warn" enum:"debug,info,warn,error" env:"HOLDEM_LOG_LEVEL" help:"Log level"`
	Seats    int      `env:"HOLDEM_SEATS" help:"Number of seats, overrides the config"`
	Report   string   `type:"path" env:"HOLDEM_REPORT" help:"Write a JSON report to this file"`
	Strategy []string `env:"HOLDEM_STRATEGY" help:"Strategy per seat (${strategies}), repeated to fill the seats"`
}

func (c *RunCmd) Run() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: true,
	})

	cfg, err := config.LoadSessionConfig(c.Config)
	if err != nil {
		return err
	}
	c.applyOverrides(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := c.Seed
	if seed == 0 {
		seed = cfg.Session.Seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sim := simulator.New(simulator.Config{
		Session:  cfg,
		Sessions: c.Sessions,
		Parallel: c.Parallel,
		Seed:     seed,
		Logger:   logger,
	})

	res, err := sim.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%d sessions of %d hands, %d seats (seed: %d, %v)\n\n",
		len(res.Sessions), cfg.Session.Hands, len(cfg.Seats), res.Seed, res.Duration)
	fmt.Println(renderSummary(res.Stats, cfg.Strategies()))
	if len(res.Sessions) == 1 {
		fmt.Println(renderStacks(cfg.Names(), res.Sessions[0].FinalStacks))
	}

	if c.Report != "" {
		if err := report.WriteFile(c.Report, report.Build(res, cfg.Strategies())); err != nil {
			return err
		}
		logger.Info("wrote report", "path", c.Report)
	}
	return nil
}

// applyOverrides replaces config values with any flags that were set.
func (c *RunCmd) applyOverrides(cfg *config.SessionConfig) {
	if c.Hands > 0 {
		cfg.Session.Hands = c.Hands
	}

	seats := c.Seats
	if seats == 0 && len(c.Strategy) > 0 {
		seats = len(c.Strategy)
	}
	if seats == 0 {
		return
	}

	strategies := c.Strategy
	if len(strategies) == 0 {
		strategies = []string{"call"}
	}
	cfg.Seats = make([]config.SeatConfig, seats)
	for i := range cfg.Seats {
		cfg.Seats[i] = config.SeatConfig{
			Name:     fmt.Sprintf("seat%d", i+1),
			Strategy: strategies[i%len(strategies)],
		}
	}
}
