package game

import "slices"

// splitPot divides pot evenly between winners. Remainder chips are handed out one at a
// time to winners in seat order starting from start.
func splitPot(pot int, winners []int, start, seats int) []int {
	payouts := make([]int, seats)
	if len(winners) == 0 {
		return payouts
	}

	share := pot / len(winners)
	for _, w := range winners {
		payouts[w] = share
	}

	remainder := pot % len(winners)
	for i := 0; remainder > 0 && i < seats; i++ {
		if seat := (start + i) % seats; slices.Contains(winners, seat) {
			payouts[seat]++
			remainder--
		}
	}
	return payouts
}
