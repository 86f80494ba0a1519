package swiss

import "sort"

// PlayerWithTiebreaks bundles a player's live state with the tiebreak
// values computed against the Section's current standings, plus the
// rank position the comparator placed it in.
type PlayerWithTiebreaks struct {
	Player         *Player
	Buchholz       Points1000
	ModifiedMedian Points1000
	SonnebornBerger Points1000
	Cumulative     Points1000
	Rank           int
}

// ComputeStandings ranks every non-withdrawn player by the full
// tiebreak ladder: score, Buchholz, Modified Median, Sonneborn-Berger,
// head to head result, Cumulative, rating, and finally name. A
// withdrawn player's recorded results still stand and still count
// toward the tiebreaks computed for everyone else; the player just
// does not appear in this ranking.
func ComputeStandings(s *Section) []PlayerWithTiebreaks {
	rows := make([]PlayerWithTiebreaks, 0, len(s.Players))
	for _, p := range s.Players {
		if p.Withdrawn {
			continue
		}
		rows = append(rows, PlayerWithTiebreaks{
			Player:          p,
			Buchholz:        Buchholz(s, p),
			ModifiedMedian:  ModifiedMedian(s, p),
			SonnebornBerger: SonnebornBerger(s, p),
			Cumulative:      Cumulative(p),
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return standingsLess(s, rows[i], rows[j])
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// standingsLess reports whether a ranks strictly ahead of b, walking
// the tiebreak ladder key by key and only consulting the next key once
// the previous one is an exact tie.
func standingsLess(s *Section, a, b PlayerWithTiebreaks) bool {
	if a.Player.Score != b.Player.Score {
		return a.Player.Score > b.Player.Score
	}
	if a.Buchholz != b.Buchholz {
		return a.Buchholz > b.Buchholz
	}
	if a.ModifiedMedian != b.ModifiedMedian {
		return a.ModifiedMedian > b.ModifiedMedian
	}
	if a.SonnebornBerger != b.SonnebornBerger {
		return a.SonnebornBerger > b.SonnebornBerger
	}
	if outcome, decided := directEncounter(a.Player, b.Player); decided {
		return outcome
	}
	if a.Cumulative != b.Cumulative {
		return a.Cumulative > b.Cumulative
	}
	if a.Player.Rating != b.Player.Rating {
		return a.Player.Rating > b.Player.Rating
	}
	return a.Player.Name < b.Player.Name
}

// directEncounter looks up whether a and b played each other and, if
// so, whether that game had a decisive result. It is computed on
// demand from Results rather than stored, since it is only ever needed
// while resolving a standings tie.
func directEncounter(a, b *Player) (aAhead bool, decided bool) {
	for _, res := range a.Results {
		if res.IsBye || res.OppID == nil || *res.OppID != b.ID {
			continue
		}
		switch {
		case res.Result > 500:
			return true, true
		case res.Result < 500:
			return false, true
		default:
			return false, false
		}
	}
	return false, false
}
