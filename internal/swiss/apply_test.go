package swiss

import "testing"

func twoPlayerRound1(t *testing.T) *Section {
	t.Helper()
	s := lockedSectionWith(newTestPlayer("A", 1500), newTestPlayer("B", 1500))
	if _, err := PairNextRound(s); err != nil {
		t.Fatalf("PairNextRound: %v", err)
	}
	return s
}

func TestApplyResultCreditsBothSides(t *testing.T) {
	s := twoPlayerRound1(t)
	if err := ApplyResult(s, 1, 1, "1-0"); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if s.Players["A"].Score != 1000 || s.Players["B"].Score != 0 {
		t.Errorf("expected A=1000 B=0, got A=%d B=%d", s.Players["A"].Score, s.Players["B"].Score)
	}
	if len(s.Players["A"].Results) != 1 || len(s.Players["B"].Results) != 1 {
		t.Fatalf("expected one results entry each, got A=%d B=%d", len(s.Players["A"].Results), len(s.Players["B"].Results))
	}
}

func TestApplyResultIdempotent(t *testing.T) {
	s := twoPlayerRound1(t)
	if err := ApplyResult(s, 1, 1, "1-0"); err != nil {
		t.Fatalf("first apply: %v", err)
	}
	firstA, firstB := s.Players["A"].Score, s.Players["B"].Score
	firstLenA, firstLenB := len(s.Players["A"].Results), len(s.Players["B"].Results)

	if err := ApplyResult(s, 1, 1, "1-0"); err != nil {
		t.Fatalf("second apply (same token): %v", err)
	}
	if s.Players["A"].Score != firstA || s.Players["B"].Score != firstB {
		t.Errorf("re-applying the same token changed scores: A=%d B=%d", s.Players["A"].Score, s.Players["B"].Score)
	}
	if len(s.Players["A"].Results) != firstLenA || len(s.Players["B"].Results) != firstLenB {
		t.Errorf("re-applying the same token changed results length: A=%d B=%d", len(s.Players["A"].Results), len(s.Players["B"].Results))
	}
}

func TestApplyResultCorrectionReversesPriorCredit(t *testing.T) {
	// applyResult(s, r, b, t1) then applyResult(., r, b, t2) must equal
	// a single applyResult(s, r, b, t2) from a fresh pairing.
	s1 := twoPlayerRound1(t)
	if err := ApplyResult(s1, 1, 1, "1-0"); err != nil {
		t.Fatalf("t1 apply: %v", err)
	}
	if err := ApplyResult(s1, 1, 1, "0-1"); err != nil {
		t.Fatalf("t2 apply: %v", err)
	}

	s2 := twoPlayerRound1(t)
	if err := ApplyResult(s2, 1, 1, "0-1"); err != nil {
		t.Fatalf("direct t2 apply: %v", err)
	}

	if s1.Players["A"].Score != s2.Players["A"].Score || s1.Players["B"].Score != s2.Players["B"].Score {
		t.Errorf("correction path diverged from direct apply: corrected A=%d B=%d, direct A=%d B=%d",
			s1.Players["A"].Score, s1.Players["B"].Score, s2.Players["A"].Score, s2.Players["B"].Score)
	}
	if len(s1.Players["A"].Results) != len(s2.Players["A"].Results) {
		t.Errorf("correction path left a stale results entry: corrected=%d direct=%d",
			len(s1.Players["A"].Results), len(s2.Players["A"].Results))
	}
}

func TestApplyResultUnknownBoard(t *testing.T) {
	s := twoPlayerRound1(t)
	err := ApplyResult(s, 1, 99, "1-0")
	if kind, ok := KindOf(err); !ok || kind != ErrBoardNotFound {
		t.Fatalf("expected ErrBoardNotFound, got %v", err)
	}
}

func TestApplyResultUnknownRound(t *testing.T) {
	s := twoPlayerRound1(t)
	err := ApplyResult(s, 5, 1, "1-0")
	if kind, ok := KindOf(err); !ok || kind != ErrRoundNotFound {
		t.Fatalf("expected ErrRoundNotFound, got %v", err)
	}
}

func TestApplyResultInvalidToken(t *testing.T) {
	s := twoPlayerRound1(t)
	err := ApplyResult(s, 1, 1, "7-0")
	if kind, ok := KindOf(err); !ok || kind != ErrInvalidResultToken {
		t.Fatalf("expected ErrInvalidResultToken, got %v", err)
	}
	// Failure must leave the Section unchanged.
	if s.Players["A"].Score != 0 || len(s.Players["A"].Results) != 0 {
		t.Errorf("expected no mutation on a failed apply, got score=%d results=%d",
			s.Players["A"].Score, len(s.Players["A"].Results))
	}
}

func TestApplyResultDrawSplitsThePoint(t *testing.T) {
	s := twoPlayerRound1(t)
	if err := ApplyResult(s, 1, 1, "0.5-0.5"); err != nil {
		t.Fatalf("ApplyResult: %v", err)
	}
	if s.Players["A"].Score != 500 || s.Players["B"].Score != 500 {
		t.Errorf("expected a 500/500 split, got A=%d B=%d", s.Players["A"].Score, s.Players["B"].Score)
	}
}
