/*
Maintainers note:
This package implements the Swiss pairing and scoring engine described in
the project specification: pairing, color assignment, result application
with correction support, and the four standings tiebreaks. Update
implementations here to match the specification as it evolves.
*/

// Package swiss implements a pragmatic USCF-style Swiss tournament
// pairing and scoring engine.
//
// The engine is a pure, deterministic function library: it performs no
// I/O, holds no long-lived resources, and every call is atomic from the
// caller's perspective. Callers own a Section value, pass it to the
// package-level operations, and persist whatever comes back — the
// engine never reaches for storage on its own.
//
// Quick start:
//
//	sec := swiss.NewSection("Club Championship", swiss.DefaultConfig())
//	sec.Register(swiss.Player{ID: "a", Name: "Alice", Rating: 1800})
//	sec.Register(swiss.Player{ID: "b", Name: "Bob", Rating: 1600})
//	sec.PlannedRounds = 4
//	sec.Lock()
//	out, _ := swiss.PairNextRound(sec)
//	for _, p := range out.Pairings {
//		_ = p // present it, collect a result token, then ApplyResult
//	}
//	_ = swiss.ApplyResult(sec, 1, 1, string(swiss.ResultWhiteWin))
//	standings := swiss.ComputeStandings(sec)
package swiss
