package swiss

// pairWithinGroup runs the top-half-vs-bottom-half scan over a single
// (possibly float-augmented) score group. topCount is the floor of
// half the group size, so the larger half — including any odd
// leftover — sits in bottom; every top player is paired or explicitly
// floated, and any bottom player left unused at the end floats too.
//
// The worked examples in the specification (four- and five-player
// round ones) only resolve correctly under a floor split: a literal
// ceil(n/2) split would place the odd player in top and produce
// different pairs than the examples require. This function follows
// the examples.
func pairWithinGroup(merged []*Player, roundNumber int) (pairings []Pairing, floated []*Player) {
	topCount := len(merged) / 2
	top := merged[:topCount]
	bottom := merged[topCount:]
	used := make([]bool, len(bottom))

	for i := 0; i < len(top); i++ {
		if i >= len(bottom) {
			floated = append(floated, top[i])
			continue
		}
		chosen := -1
		for j := i; j < len(bottom); j++ {
			if used[j] {
				continue
			}
			if !top[i].hasPlayed(bottom[j].ID) {
				chosen = j
				break
			}
		}
		if chosen == -1 {
			for j := 0; j < len(bottom); j++ {
				if !used[j] {
					chosen = j
					break
				}
			}
		}
		if chosen == -1 {
			floated = append(floated, top[i])
			continue
		}
		used[chosen] = true
		partner := bottom[chosen]
		pairings = append(pairings, makePairing(top[i], partner))
	}

	for j, u := range used {
		if !u {
			floated = append(floated, bottom[j])
		}
	}
	return pairings, floated
}

// makePairing runs color selection for a and b, records the
// opponent/color history on both (immediately, so later groups and
// later pairings in this same round observe it), and returns the new
// non-bye Pairing (board number left unassigned).
func makePairing(a, b *Player) Pairing {
	whiteID, blackID := SelectColor(a, b)
	white, black := a, b
	if whiteID != a.ID {
		white, black = b, a
	}
	white.recordOpponent(black.ID, White)
	black.recordOpponent(white.ID, Black)
	return Pairing{WhiteID: white.ID, BlackID: &blackID, Board: 0}
}

// pairScoreGroups partitions the active (non-withdrawn) roster into
// contiguous equal-score groups and pairs within each, carrying floats
// forward into the next (lower) group. It returns the pairings formed
// and the final leftover queue (floats out of the last group).
func pairScoreGroups(players []*Player, roundNumber int) (pairings []Pairing, leftover []*Player) {
	ordered := append([]*Player(nil), players...)
	sortStandingOrder(ordered)

	var floatedCarry []*Player
	i := 0
	for i < len(ordered) {
		j := i + 1
		for j < len(ordered) && ordered[j].Score == ordered[i].Score {
			j++
		}
		group := append([]*Player(nil), ordered[i:j]...)
		sortSeedOrder(group)

		merged := make([]*Player, 0, len(floatedCarry)+len(group))
		merged = append(merged, floatedCarry...)
		merged = append(merged, group...)

		groupPairings, floated := pairWithinGroup(merged, roundNumber)
		pairings = append(pairings, groupPairings...)
		floatedCarry = floated

		i = j
	}
	leftover = floatedCarry
	return pairings, leftover
}
