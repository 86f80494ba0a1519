package swiss

import "testing"

// buildFinishedSection wires up four players with the final scores of
// the spec's worked Buchholz example (A=3, B=2, C=1, D=0). It sets
// scores only; each test fills in the Opponents or Results it needs.
func buildFinishedSection(t *testing.T) *Section {
	t.Helper()
	s := NewSection("finished", DefaultConfig())
	a := newTestPlayer("A", 1800)
	b := newTestPlayer("B", 1600)
	c := newTestPlayer("C", 1400)
	d := newTestPlayer("D", 1200)
	a.Score, b.Score, c.Score, d.Score = 3000, 2000, 1000, 0
	for _, p := range []*Player{a, b, c, d} {
		s.Register(*p)
	}
	return s
}

func TestBuchholzMatchesWorkedExample(t *testing.T) {
	s := buildFinishedSection(t)
	a, b := s.Players["A"], s.Players["B"]
	a.Opponents = []PlayerID{"B", "C", "D"}
	b.Opponents = []PlayerID{"A", "C", "D"}

	if got := Buchholz(s, a); got != 2000+1000+0 {
		t.Errorf("A's Buchholz = %d, want %d", got, 2000+1000+0)
	}
	if got := Buchholz(s, b); got != 3000+1000+0 {
		t.Errorf("B's Buchholz = %d, want %d", got, 3000+1000+0)
	}
}

func TestModifiedMedianDropsHighAndLow(t *testing.T) {
	s := buildFinishedSection(t)
	a := s.Players["A"]
	a.Opponents = []PlayerID{"B", "C", "D"} // scores 2000, 1000, 0 -> drop 2000 and 0 -> 1000

	if got := ModifiedMedian(s, a); got != 1000 {
		t.Errorf("A's modified median = %d, want 1000", got)
	}
}

func TestModifiedMedianEqualsBuchholzWithTwoOrFewerOpponents(t *testing.T) {
	s := buildFinishedSection(t)
	a := s.Players["A"]
	a.Opponents = []PlayerID{"B", "C"}

	if ModifiedMedian(s, a) != Buchholz(s, a) {
		t.Errorf("expected modified median to equal Buchholz with only 2 opponents")
	}
}

func TestSonnebornBergerWeightsByResult(t *testing.T) {
	s := buildFinishedSection(t)
	a := s.Players["A"]
	a.Results = []ResultRecord{
		{Round: 1, OppID: idPtr("B"), Result: 1000}, // win vs B (score 2000) -> +2000
		{Round: 2, OppID: idPtr("C"), Result: 500},  // draw vs C (score 1000) -> +500
		{Round: 3, OppID: idPtr("D"), Result: 0},     // loss vs D (score 0) -> +0
	}

	if got := SonnebornBerger(s, a); got != 2500 {
		t.Errorf("A's Sonneborn-Berger = %d, want 2500", got)
	}
}

func TestSonnebornBergerExcludesByes(t *testing.T) {
	s := buildFinishedSection(t)
	a := s.Players["A"]
	a.Results = []ResultRecord{{Round: 1, Result: 1000, IsBye: true}}

	if got := SonnebornBerger(s, a); got != 0 {
		t.Errorf("expected a bye to contribute 0 to Sonneborn-Berger, got %d", got)
	}
}

func TestCumulativeRewardsEarlyScoring(t *testing.T) {
	early := &Player{ID: "early", Results: []ResultRecord{
		{Round: 1, Result: 1000}, {Round: 2, Result: 0}, {Round: 3, Result: 0},
	}}
	late := &Player{ID: "late", Results: []ResultRecord{
		{Round: 1, Result: 0}, {Round: 2, Result: 0}, {Round: 3, Result: 1000},
	}}

	// Both finish with the same total score (1000) but the early winner
	// accumulates a higher running-sum cumulative value.
	if Cumulative(early) <= Cumulative(late) {
		t.Errorf("expected early scoring to yield a higher cumulative value: early=%d late=%d", Cumulative(early), Cumulative(late))
	}
}

func TestBuchholzExcludesWithdrawnOpponents(t *testing.T) {
	s := buildFinishedSection(t)
	a, b := s.Players["A"], s.Players["B"]
	a.Opponents = []PlayerID{"B", "C", "D"}
	b.Withdrawn = true

	if got := Buchholz(s, a); got != 1000+0 {
		t.Errorf("A's Buchholz with B withdrawn = %d, want %d (B excluded)", got, 1000+0)
	}
}

func TestSonnebornBergerExcludesWithdrawnOpponents(t *testing.T) {
	s := buildFinishedSection(t)
	a, b := s.Players["A"], s.Players["B"]
	b.Withdrawn = true
	a.Results = []ResultRecord{
		{Round: 1, OppID: idPtr("B"), Result: 1000}, // win vs withdrawn B -> excluded
		{Round: 2, OppID: idPtr("C"), Result: 500},  // draw vs C (score 1000) -> +500
	}

	if got := SonnebornBerger(s, a); got != 500 {
		t.Errorf("A's Sonneborn-Berger with B withdrawn = %d, want 500", got)
	}
}

func idPtr(id PlayerID) *PlayerID { return &id }
