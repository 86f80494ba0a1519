package swiss

import "sort"

// nonByeOpponentScores returns, in play order, the current Score of
// every opponent p actually played (byes contribute no opponent and
// are skipped). A withdrawn opponent's score is excluded: withdrawn
// players' own recorded results stand, but they drop out of the
// Buchholz-family tiebreaks computed for everyone else.
func nonByeOpponentScores(s *Section, p *Player) []Points1000 {
	scores := make([]Points1000, 0, len(p.Opponents))
	for _, oppID := range p.Opponents {
		if opp, ok := s.Players[oppID]; ok && !opp.Withdrawn {
			scores = append(scores, opp.Score)
		}
	}
	return scores
}

// Buchholz is the classic Solkoff sum: the total of every opponent's
// current score, bye rounds excluded.
func Buchholz(s *Section, p *Player) Points1000 {
	var total Points1000
	for _, sc := range nonByeOpponentScores(s, p) {
		total += sc
	}
	return total
}

// ModifiedMedian is Buchholz with the single highest and single lowest
// opponent score discarded, once the player has faced more than two
// opponents (with two or fewer, nothing is discarded and this equals
// Buchholz).
func ModifiedMedian(s *Section, p *Player) Points1000 {
	scores := nonByeOpponentScores(s, p)
	if len(scores) <= 2 {
		return Buchholz(s, p)
	}
	sorted := append([]Points1000(nil), scores...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i] < sorted[j] })
	var total Points1000
	for _, sc := range sorted[1 : len(sorted)-1] {
		total += sc
	}
	return total
}

// SonnebornBerger weights each opponent's current score by the result
// of that individual game: the opponent's score counts in full for a
// win, at half for a draw, and not at all for a loss. Byes contribute
// nothing, matching Buchholz.
func SonnebornBerger(s *Section, p *Player) Points1000 {
	var total Points1000
	for _, res := range p.Results {
		if res.IsBye || res.OppID == nil {
			continue
		}
		opp, ok := s.Players[*res.OppID]
		if !ok || opp.Withdrawn {
			continue
		}
		switch {
		case res.Result >= 1000:
			total += opp.Score
		case res.Result > 0:
			total += opp.Score / 2
		}
	}
	return total
}

// Cumulative sums the player's own running score total after each
// round played, rewarding players who score early rather than late.
func Cumulative(p *Player) Points1000 {
	results := append([]ResultRecord(nil), p.Results...)
	sort.Slice(results, func(i, j int) bool { return results[i].Round < results[j].Round })

	var running, total Points1000
	for _, res := range results {
		running += res.Result
		total += running
	}
	return total
}
