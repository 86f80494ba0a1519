package swiss

import "fmt"

// TD overrides are thin, explicit edits to an already-frozen Round's
// Pairing vector. They never touch Score, Results, Opponents, or
// Colors history — a TD fixing a pairing mistake before results are
// entered should not have that fix look like a played game once
// tiebreaks are computed.

// TDSwap exchanges whiteId and blackId on a single non-bye board. This
// is the standard fix for "these two are seated with the wrong
// color" discovered after the round is posted but before results come
// in. It does not retroactively adjust Colors history: history records
// who actually played; the override documents an intent.
func TDSwap(s *Section, roundNumber, board int) error {
	round := findRound(s, roundNumber)
	if round == nil {
		return newErr(ErrRoundNotFound, "round %d", roundNumber)
	}
	pairing := round.findBoard(board)
	if pairing == nil {
		return newErr(ErrBoardNotFound, "board %d in round %d", board, roundNumber)
	}
	if pairing.IsBye {
		return newErr(ErrBoardNotFound, "cannot swap a bye board (round %d, board %d)", roundNumber, board)
	}

	oldWhite := pairing.WhiteID
	pairing.WhiteID = *pairing.BlackID
	pairing.BlackID = &oldWhite
	pairing.TDNote = "TD swap: white/black exchanged"
	s.recordEvent(EventOverrideSwap, roundNumber, board, pairing.TDNote)
	return nil
}

// TDReplace substitutes newID for oldID wherever oldID currently sits
// (White or Black) in the named board, for example swapping in an
// alternate after a registered player turns out to be unavailable.
func TDReplace(s *Section, roundNumber, board int, oldID, newID PlayerID) error {
	round := findRound(s, roundNumber)
	if round == nil {
		return newErr(ErrRoundNotFound, "round %d", roundNumber)
	}
	pairing := round.findBoard(board)
	if pairing == nil {
		return newErr(ErrBoardNotFound, "board %d in round %d", board, roundNumber)
	}
	if _, ok := s.Players[newID]; !ok {
		return newErr(ErrPlayerMissing, "%q", newID)
	}

	switch {
	case pairing.WhiteID == oldID:
		pairing.WhiteID = newID
	case pairing.BlackID != nil && *pairing.BlackID == oldID:
		pairing.BlackID = &newID
	default:
		return newErr(ErrPlayerMissing, "%q is not seated at board %d in round %d", oldID, board, roundNumber)
	}
	pairing.TDNote = fmt.Sprintf("TD replace: %s -> %s", oldID, newID)
	s.recordEvent(EventOverrideReplace, roundNumber, board, pairing.TDNote)
	return nil
}

// TDForceColor ensures whiteID holds White on the named board: if
// whiteID is currently seated as Black, the board is swapped; if
// whiteID already holds White, this is a no-op (idempotent). whiteID
// must currently occupy one side of the board.
func TDForceColor(s *Section, roundNumber, board int, whiteID PlayerID) error {
	round := findRound(s, roundNumber)
	if round == nil {
		return newErr(ErrRoundNotFound, "round %d", roundNumber)
	}
	pairing := round.findBoard(board)
	if pairing == nil {
		return newErr(ErrBoardNotFound, "board %d in round %d", board, roundNumber)
	}
	if pairing.IsBye {
		return newErr(ErrBoardNotFound, "cannot force color on a bye board (round %d, board %d)", roundNumber, board)
	}

	switch {
	case pairing.WhiteID == whiteID:
		return nil
	case pairing.BlackID != nil && *pairing.BlackID == whiteID:
		oldWhite := pairing.WhiteID
		pairing.WhiteID = whiteID
		pairing.BlackID = &oldWhite
		pairing.TDNote = fmt.Sprintf("TD force color: %s now White", whiteID)
		s.recordEvent(EventOverrideForceColor, roundNumber, board, pairing.TDNote)
		return nil
	default:
		return newErr(ErrPlayerMissing, "%q is not seated at board %d in round %d", whiteID, board, roundNumber)
	}
}
