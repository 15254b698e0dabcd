// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package election

// tally scans proposals from id 1 upward, starting from GENESIS as the
// running winner, and replaces the winner only on a strictly greater count.
// Ties go to the lowest id. Votes cast for GENESIS count as the baseline a
// real proposal has to beat.
func tally(proposals []Proposal) int {
	if len(proposals) == 0 {
		return GenesisID
	}
	winner := GenesisID
	best := proposals[GenesisID].VoteCount
	for id := 1; id < len(proposals); id++ {
		if proposals[id].VoteCount > best {
			best = proposals[id].VoteCount
			winner = id
		}
	}
	return winner
}
