package swiss

// buildUnpairedQueue concatenates the score-group leftover with any
// active player that still doesn't appear in a Pairing, preserving the
// leftover's order first as spec.md §4.4 directs.
func buildUnpairedQueue(leftover []*Player, allPlayers []*Player, paired map[PlayerID]bool) []*Player {
	queue := append([]*Player(nil), leftover...)
	inQueue := make(map[PlayerID]bool, len(queue))
	for _, p := range queue {
		inQueue[p.ID] = true
	}
	for _, p := range allPlayers {
		if !paired[p.ID] && !inQueue[p.ID] {
			queue = append(queue, p)
		}
	}
	return queue
}

// pairLeftoverQueue greedily pairs down the unpaired queue, preferring
// a non-rematch partner but falling back to a forced rematch rather
// than leave more than one player unpaired. Returns the pairings
// formed and the (0 or 1) players still unpaired afterward.
func pairLeftoverQueue(queue []*Player) (pairings []Pairing, remaining []*Player) {
	rest := append([]*Player(nil), queue...)
	for len(rest) >= 2 {
		a := rest[0]
		rest = rest[1:]

		idx := -1
		for i, cand := range rest {
			if !a.hasPlayed(cand.ID) {
				idx = i
				break
			}
		}
		if idx == -1 {
			idx = 0 // forced rematch: no alternative exists
		}
		b := rest[idx]
		rest = append(rest[:idx], rest[idx+1:]...)

		pairings = append(pairings, makePairing(a, b))
	}
	return pairings, rest
}

// chooseByeRecipient picks the bye recipient among candidates: lowest
// score, then lowest rating, then earliest name, preferring a player
// who has not yet had a bye; falls back to the overall minimum by the
// same order if every candidate has already had one.
func chooseByeRecipient(candidates []*Player) *Player {
	if len(candidates) == 0 {
		return nil
	}
	less := func(a, b *Player) bool {
		if a.Score != b.Score {
			return a.Score < b.Score
		}
		if a.Rating != b.Rating {
			return a.Rating < b.Rating
		}
		return a.Name < b.Name
	}
	minBy := func(ps []*Player) *Player {
		best := ps[0]
		for _, p := range ps[1:] {
			if less(p, best) {
				best = p
			}
		}
		return best
	}

	var eligible []*Player
	for _, p := range candidates {
		if !p.HadBye {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) > 0 {
		return minBy(eligible)
	}
	return minBy(candidates)
}

// assignBye credits the chosen player's full-point (or configured)
// bye immediately and returns the bye Pairing.
func assignBye(p *Player, roundNumber int, byeValue Points1000) Pairing {
	p.recordBye(roundNumber, byeValue)
	token := ResultWhiteWin
	return Pairing{WhiteID: p.ID, BlackID: nil, IsBye: true, Result: &token, TDNote: "auto-bye"}
}

func (p *Player) recordBye(round int, pts Points1000) {
	p.Results = append(p.Results, ResultRecord{Round: round, OppID: nil, Result: pts, IsBye: true})
	p.Score += pts
	p.HadBye = true
}
