// Package store persists swiss.Section values. The engine itself never
// touches a database; callers fetch a Section, hand it to the engine,
// and write the result back through one of these backends.
package store

import (
	"context"
	"errors"

	"swisstd/internal/swiss"
)

// ErrNotFound is returned by Load when no Section is stored under the
// given name.
var ErrNotFound = errors.New("store: section not found")

// SectionStore is the persistence seam the engine's callers code
// against. GormStore and MemoryStore both satisfy it, matching the
// spreadsheet/realtime-document/in-memory backend plurality this
// tournament manager is wrapped around.
type SectionStore interface {
	Save(ctx context.Context, s *swiss.Section) error
	Load(ctx context.Context, name string) (*swiss.Section, error)
	List(ctx context.Context) ([]string, error)
	Delete(ctx context.Context, name string) error
}

// CancelCurrentRound loads name, cancels its most recently paired
// round (refusing if any board in it already has a recorded result),
// and saves the result back. Adapted from the teacher's
// CancelCurrentRound, which reverted a model.Tournament's last round
// the same way, guarded by the same no-results check.
func CancelCurrentRound(ctx context.Context, st SectionStore, name string) error {
	s, err := st.Load(ctx, name)
	if err != nil {
		return err
	}
	if err := swiss.CancelCurrentRound(s); err != nil {
		return err
	}
	return st.Save(ctx, s)
}
