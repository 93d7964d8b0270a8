// Package report writes simulation summaries to disk.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/lox/holdemsim/internal/simulator"
)

// Report is the JSON document written after a simulation run.
type Report struct {
	Seed          int64        `json:"seed"`
	Sessions      int          `json:"sessions"`
	HandsPlayed   int          `json:"hands_played"`
	BigBlind      int          `json:"big_blind"`
	DurationMS    int64        `json:"duration_ms"`
	Seats         []SeatReport `json:"seats"`
	SessionStacks [][]int      `json:"session_stacks"`
}

// SeatReport summarises one seat across every session.
type SeatReport struct {
	Name            string     `json:"name"`
	Strategy        string     `json:"strategy"`
	Hands           int        `json:"hands"`
	NetChips        int        `json:"net_chips"`
	MeanBB          float64    `json:"mean_bb"`
	StdDevBB        float64    `json:"stddev_bb"`
	CI95            [2]float64 `json:"ci95_bb"`
	ShowdownWins    int        `json:"showdown_wins"`
	NonShowdownWins int        `json:"non_showdown_wins"`
	Splits          int        `json:"splits"`
}

// Build creates a report from a simulation result. strategies is indexed by seat.
func Build(res *simulator.Result, strategies []string) Report {
	stats := res.Stats
	r := Report{
		Seed:        res.Seed,
		Sessions:    len(res.Sessions),
		HandsPlayed: stats.Hands,
		BigBlind:    stats.BigBlind,
		DurationMS:  res.Duration.Milliseconds(),
	}

	for i, name := range stats.Names {
		s := &stats.Seats[i]
		lo, hi := s.ConfidenceInterval95()
		r.Seats = append(r.Seats, SeatReport{
			Name:            name,
			Strategy:        strategies[i],
			Hands:           s.Hands,
			NetChips:        stats.NetChips[i],
			MeanBB:          s.Mean(),
			StdDevBB:        s.StdDev(),
			CI95:            [2]float64{lo, hi},
			ShowdownWins:    s.ShowdownWins,
			NonShowdownWins: s.NonShowdownWins,
			Splits:          s.Splits,
		})
	}
	for _, s := range res.Sessions {
		r.SessionStacks = append(r.SessionStacks, s.FinalStacks)
	}
	return r
}

// WriteFile writes the report as indented JSON. Readers see either the previous file
// or the complete new one, never a partial write.
func WriteFile(filename string, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}
	return writeFileAtomic(filename, append(data, '\n'), 0o644)
}

// writeFileAtomic writes to a temporary file in the same directory and renames it
// into place.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	ok := false
	defer func() {
		if !ok {
			tmp.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err := os.Rename(tmpPath, filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	ok = true
	return nil
}
