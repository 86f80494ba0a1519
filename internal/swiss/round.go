package swiss

// PairNextRoundResult is the return value of PairNextRound: the frozen,
// board-numbered pairing list for the new round, and the set of
// players whose in-memory state changed (opponents/colors for every
// paired player, plus score/history for a bye recipient).
type PairNextRoundResult struct {
	Pairings []Pairing
	Delta    map[PlayerID]*Player
}

// PairNextRound computes the next round's pairings against the
// Section's current state, appends the new Round, and returns the
// frozen pairing list plus the player-state delta the pairer applied.
//
// Fails with ErrSectionNotLocked if the section hasn't been locked,
// and ErrAllRoundsStarted if every planned round has already been
// paired.
func PairNextRound(s *Section) (PairNextRoundResult, error) {
	if !s.Locked {
		return PairNextRoundResult{}, newErr(ErrSectionNotLocked, "section %q is not locked", s.Name)
	}
	if s.PlannedRounds > 0 && len(s.Rounds) >= s.PlannedRounds {
		return PairNextRoundResult{}, newErr(ErrAllRoundsStarted, "section %q has already started all %d planned rounds", s.Name, s.PlannedRounds)
	}

	roundNumber := len(s.Rounds) + 1
	active := s.activePlayers()

	pairings, leftover := pairScoreGroups(active, roundNumber)

	paired := make(map[PlayerID]bool, len(active)*2)
	for _, p := range pairings {
		paired[p.WhiteID] = true
		if p.BlackID != nil {
			paired[*p.BlackID] = true
		}
	}

	queue := buildUnpairedQueue(leftover, active, paired)
	moreParings, remaining := pairLeftoverQueue(queue)
	pairings = append(pairings, moreParings...)
	for _, p := range moreParings {
		paired[p.WhiteID] = true
		if p.BlackID != nil {
			paired[*p.BlackID] = true
		}
	}

	if len(remaining) == 1 {
		byeRecipient := chooseByeRecipient(remaining)
		pairings = append(pairings, assignBye(byeRecipient, roundNumber, s.Config.ByeValue))
		paired[byeRecipient.ID] = true
	}

	for i := range pairings {
		pairings[i].Board = i + 1
	}

	s.Rounds = append(s.Rounds, Round{Number: roundNumber, Pairings: pairings})

	delta := make(map[PlayerID]*Player, len(paired))
	for id := range paired {
		delta[id] = s.Players[id]
	}

	return PairNextRoundResult{Pairings: pairings, Delta: delta}, nil
}

// CancelCurrentRound removes the most recently paired round, provided
// none of its boards carry a recorded result yet. Besides dropping the
// round from the Rounds slice, it removes the Opponents/Colors entry
// the pairer recorded for each game board. Score and Results need no
// unwinding: with no result recorded (a bye board always carries one),
// pairing never touched them.
func CancelCurrentRound(s *Section) error {
	if len(s.Rounds) == 0 {
		return newErr(ErrRoundNotFound, "section %q has no rounds to cancel", s.Name)
	}
	current := &s.Rounds[len(s.Rounds)-1]
	for _, p := range current.Pairings {
		if p.Result != nil {
			return newErr(ErrPairingStateCorrupt, "cannot cancel round %d: board %d already has a recorded result", current.Number, p.Board)
		}
	}
	for _, p := range current.Pairings {
		if p.BlackID == nil {
			continue
		}
		for _, seat := range [][2]PlayerID{{p.WhiteID, *p.BlackID}, {*p.BlackID, p.WhiteID}} {
			if pl, ok := s.Players[seat[0]]; ok {
				for k := len(pl.Opponents) - 1; k >= 0; k-- {
					if pl.Opponents[k] == seat[1] {
						pl.Opponents = append(pl.Opponents[:k], pl.Opponents[k+1:]...)
						pl.Colors = append(pl.Colors[:k], pl.Colors[k+1:]...)
						break
					}
				}
			}
		}
	}
	s.Rounds = s.Rounds[:len(s.Rounds)-1]
	s.recordEvent(EventRoundCancelled, current.Number, 0, "round cancelled before any result was recorded")
	return nil
}
