package swiss

import "fmt"

// ApplyResult records newToken for the pairing at (roundNumber, board),
// retracting any previously recorded result first. Retraction and
// credit are computed and validated before any mutation happens, so a
// failure (RoundNotFound, BoardNotFound, InvalidResultToken,
// PlayerMissing, PairingStateCorrupt) leaves the Section completely
// unchanged.
//
// Applying the same token twice is a no-op on the final state
// (idempotence); applying a different token retracts the old credit
// and applies the new one, preserving every other round's history.
func ApplyResult(s *Section, roundNumber, board int, token string) error {
	round := findRound(s, roundNumber)
	if round == nil {
		return newErr(ErrRoundNotFound, "round %d", roundNumber)
	}
	pairing := round.findBoard(board)
	if pairing == nil {
		return newErr(ErrBoardNotFound, "board %d in round %d", board, roundNumber)
	}

	newToken, err := NormalizeToken(token)
	if err != nil {
		return err
	}

	white, ok := s.Players[pairing.WhiteID]
	if !ok {
		return newErr(ErrPlayerMissing, "white %q", pairing.WhiteID)
	}
	var black *Player
	if !pairing.IsBye {
		black, ok = s.Players[*pairing.BlackID]
		if !ok {
			return newErr(ErrPlayerMissing, "black %q", *pairing.BlackID)
		}
	}

	// Validate the retraction (if any) is locatable before mutating
	// anything, so a corrupt-state failure leaves the Section intact.
	var whiteRetractIdx, blackRetractIdx = -1, -1
	var wPrev, bPrev Points1000
	if pairing.Result != nil {
		wPrev, bPrev, err = Points(*pairing.Result)
		if err != nil {
			return err
		}
		whiteRetractIdx = findResultIndex(white, roundNumber, pairing.BlackID, pairing.IsBye)
		if whiteRetractIdx == -1 {
			return newErr(ErrPairingStateCorrupt, "white %q has no recorded result for round %d to retract", white.ID, roundNumber)
		}
		if !pairing.IsBye {
			whiteIDCopy := white.ID
			blackRetractIdx = findResultIndex(black, roundNumber, &whiteIDCopy, false)
			if blackRetractIdx == -1 {
				return newErr(ErrPairingStateCorrupt, "black %q has no recorded result for round %d to retract", black.ID, roundNumber)
			}
		}
	}

	wNew, bNew, err := Points(newToken)
	if err != nil {
		return err
	}

	// Everything validated — commit.
	isCorrection := pairing.Result != nil
	if isCorrection {
		white.Score -= wPrev
		white.Results = append(white.Results[:whiteRetractIdx], white.Results[whiteRetractIdx+1:]...)
		if !pairing.IsBye {
			black.Score -= bPrev
			black.Results = append(black.Results[:blackRetractIdx], black.Results[blackRetractIdx+1:]...)
		}
	}

	pairing.Result = &newToken

	white.Score += wNew
	if pairing.IsBye {
		white.Results = append(white.Results, ResultRecord{Round: roundNumber, OppID: nil, Result: wNew, IsBye: true})
		white.HadBye = true
	} else {
		black.Score += bNew
		blackID := black.ID
		whiteID := white.ID
		white.Results = append(white.Results, ResultRecord{Round: roundNumber, OppID: &blackID, Result: wNew})
		black.Results = append(black.Results, ResultRecord{Round: roundNumber, OppID: &whiteID, Result: bNew})
		ensureOpponent(white, black.ID)
		ensureOpponent(black, white.ID)
	}

	kind := EventResultRecorded
	if isCorrection {
		kind = EventResultCorrected
	}
	s.recordEvent(kind, roundNumber, board, fmt.Sprintf("result set to %s", newToken))

	return nil
}

func findRound(s *Section, number int) *Round {
	for i := range s.Rounds {
		if s.Rounds[i].Number == number {
			return &s.Rounds[i]
		}
	}
	return nil
}

func findResultIndex(p *Player, round int, oppID *PlayerID, isBye bool) int {
	for i, res := range p.Results {
		if res.Round != round || res.IsBye != isBye {
			continue
		}
		if isBye {
			return i
		}
		if res.OppID != nil && oppID != nil && *res.OppID == *oppID {
			return i
		}
	}
	return -1
}

// ensureOpponent is the idempotent safety net spec.md §4.5 step 6
// calls for: the pairer already records the opponent relationship at
// pairing time, so this only matters if that bookkeeping is ever
// bypassed (e.g. a TD Replace swapped in a new player after pairing).
func ensureOpponent(p *Player, oppID PlayerID) {
	if p.hasPlayed(oppID) {
		return
	}
	p.Opponents = append(p.Opponents, oppID)
}
