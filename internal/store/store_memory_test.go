package store

import (
	"context"
	"testing"

	"swisstd/internal/swiss"
)

func TestMemoryStoreSaveLoadRoundTrip(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := swiss.NewSection("Open A", swiss.DefaultConfig())
	if err := s.Register(swiss.Player{ID: "alice", Name: "Alice", Rating: 1800}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := st.Load(ctx, "Open A")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.Name != "Open A" {
		t.Fatalf("Name = %q, want %q", got.Name, "Open A")
	}
	if _, ok := got.Players["alice"]; !ok {
		t.Fatalf("loaded section missing registered player")
	}
}

func TestMemoryStoreLoadIsolatesFromCaller(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := swiss.NewSection("Isolation", swiss.DefaultConfig())
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := st.Load(ctx, "Isolation")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if err := loaded.Register(swiss.Player{ID: "bob", Name: "Bob"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	reloaded, err := st.Load(ctx, "Isolation")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if _, ok := reloaded.Players["bob"]; ok {
		t.Fatalf("mutation on a loaded copy leaked back into the store")
	}
}

func TestMemoryStoreLoadUnknownReturnsErrNotFound(t *testing.T) {
	st := NewMemoryStore()
	if _, err := st.Load(context.Background(), "nope"); err != ErrNotFound {
		t.Fatalf("Load unknown = %v, want ErrNotFound", err)
	}
}

func TestCancelCurrentRoundRoundTripsThroughAStore(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	s := swiss.NewSection("Cancel", swiss.DefaultConfig())
	if err := s.Register(swiss.Player{ID: "alice", Name: "Alice"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	if err := s.Register(swiss.Player{ID: "bob", Name: "Bob"}); err != nil {
		t.Fatalf("Register: %v", err)
	}
	s.Lock()
	if _, err := swiss.PairNextRound(s); err != nil {
		t.Fatalf("PairNextRound: %v", err)
	}
	if err := st.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if err := CancelCurrentRound(ctx, st, "Cancel"); err != nil {
		t.Fatalf("CancelCurrentRound: %v", err)
	}

	got, err := st.Load(ctx, "Cancel")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got.Rounds) != 0 {
		t.Fatalf("expected the cancelled round to be persisted as removed, got %d rounds", len(got.Rounds))
	}
}

func TestMemoryStoreListAndDelete(t *testing.T) {
	st := NewMemoryStore()
	ctx := context.Background()

	for _, name := range []string{"B Section", "A Section"} {
		if err := st.Save(ctx, swiss.NewSection(name, swiss.DefaultConfig())); err != nil {
			t.Fatalf("Save %q: %v", name, err)
		}
	}

	names, err := st.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 2 || names[0] != "A Section" || names[1] != "B Section" {
		t.Fatalf("List = %v, want sorted [A Section B Section]", names)
	}

	if err := st.Delete(ctx, "A Section"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := st.Load(ctx, "A Section"); err != ErrNotFound {
		t.Fatalf("Load after Delete = %v, want ErrNotFound", err)
	}
}
