package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/holdemsim/internal/statistics"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().
			Padding(0, 1)

	winStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("10"))

	lossStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Foreground(lipgloss.Color("9"))
)

const netColumn = 3

// renderSummary renders one row per seat with results in big blinds per hand.
func renderSummary(stats *statistics.Table, strategies []string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Seat", "Strategy", "Hands", "Net", "bb/hand", "95% CI", "SD wins", "NSD wins", "Splits").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == netColumn && stats.NetChips[row] > 0:
				return winStyle
			case col == netColumn && stats.NetChips[row] < 0:
				return lossStyle
			default:
				return cellStyle
			}
		})

	for i, name := range stats.Names {
		s := &stats.Seats[i]
		lo, hi := s.ConfidenceInterval95()
		t.Row(
			name,
			strategies[i],
			strconv.Itoa(s.Hands),
			fmt.Sprintf("%+d", stats.NetChips[i]),
			fmt.Sprintf("%+.3f", s.Mean()),
			fmt.Sprintf("[%+.3f, %+.3f]", lo, hi),
			strconv.Itoa(s.ShowdownWins),
			strconv.Itoa(s.NonShowdownWins),
			strconv.Itoa(s.Splits),
		)
	}
	return t.String()
}

// renderStacks renders the final stacks of a single session.
func renderStacks(names []string, stacks []int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Seat", "Final stack").
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for i, name := range names {
		t.Row(name, strconv.Itoa(stacks[i]))
	}
	return t.String()
}
