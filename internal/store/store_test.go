package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/dukerupert/pricetrack/internal/model"
)

// newTestStore builds a store with deterministic ids (id1, id2, ...) and a
// fixed clock.
func newTestStore(t *testing.T, opts ...Option) *Store {
	t.Helper()
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
	clock := func() time.Time {
		return time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	base := []Option{WithIDGenerator(gen), WithClock(clock)}
	return New(model.Snapshot{}, append(base, opts...)...)
}

type recordingPersister struct {
	saves []model.Snapshot
	err   error
}

func (p *recordingPersister) Save(snap model.Snapshot) error {
	p.saves = append(p.saves, snap)
	return p.err
}

func TestMutationPersistsAndNotifies(t *testing.T) {
	p := &recordingPersister{}
	s := newTestStore(t, WithPersister(p))

	var events []Event
	var lastSnap model.Snapshot
	s.Subscribe(func(ev Event, snap model.Snapshot) {
		events = append(events, ev)
		lastSnap = snap
	})

	prod := s.AddProduct("Milk", "123", "", "")

	if len(p.saves) != 1 {
		t.Fatalf("expected 1 persisted snapshot, got %d", len(p.saves))
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].Entity != "product" || events[0].Action != "created" || events[0].ID != prod.ID {
		t.Errorf("event = %+v, want product/created/%s", events[0], prod.ID)
	}
	if len(lastSnap.Products) != 1 || lastSnap.Products[0].ID != prod.ID {
		t.Errorf("subscriber snapshot missing the new product: %+v", lastSnap.Products)
	}
}

func TestNoOpMutationDoesNotNotify(t *testing.T) {
	p := &recordingPersister{}
	s := newTestStore(t, WithPersister(p))

	var events int
	s.Subscribe(func(Event, model.Snapshot) { events++ })

	name := "Ghost"
	s.UpdateProduct("missing", ProductPatch{Name: &name})
	s.DeleteProduct("missing")
	s.DeletePrice("missing")
	s.DeleteVendor("missing")
	s.RemoveItemFromList("missing", "missing")

	if events != 0 {
		t.Errorf("expected no events for no-op mutations, got %d", events)
	}
	if len(p.saves) != 0 {
		t.Errorf("expected no persistence for no-op mutations, got %d saves", len(p.saves))
	}
}

func TestPersistFailureIsSwallowed(t *testing.T) {
	p := &recordingPersister{err: errors.New("disk full")}
	s := newTestStore(t, WithPersister(p))

	// Must not panic or surface the error; the store keeps operating.
	prod := s.AddProduct("Milk", "123", "", "")
	if _, ok := s.Product(prod.ID); !ok {
		t.Error("product should exist in memory despite persist failure")
	}
}

func TestReplaceSwapsSnapshot(t *testing.T) {
	s := newTestStore(t)
	s.AddProduct("Old", "1", "", "")

	var ev Event
	s.Subscribe(func(e Event, _ model.Snapshot) { ev = e })

	s.Replace(Seed())

	snap := s.Snapshot()
	if len(snap.Products) != 3 {
		t.Fatalf("expected 3 seed products after replace, got %d", len(snap.Products))
	}
	if ev.Entity != "snapshot" || ev.Action != "replaced" {
		t.Errorf("event = %+v, want snapshot/replaced", ev)
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s := newTestStore(t)
	prod := s.AddProduct("Milk", "123", "", "")

	snap := s.Snapshot()
	snap.Products[0].Name = "Tampered"

	got, _ := s.Product(prod.ID)
	if got.Name != "Milk" {
		t.Errorf("store state mutated through snapshot copy: %q", got.Name)
	}
}

func TestSeedShape(t *testing.T) {
	snap := Seed()
	if len(snap.Vendors) != 5 {
		t.Errorf("seed vendors = %d, want 5", len(snap.Vendors))
	}
	if len(snap.Products) != 3 {
		t.Errorf("seed products = %d, want 3", len(snap.Products))
	}
	if len(snap.Prices) != 7 {
		t.Errorf("seed prices = %d, want 7", len(snap.Prices))
	}
	if len(snap.RecentScans) != 2 {
		t.Errorf("seed recent scans = %d, want 2", len(snap.RecentScans))
	}
	for _, v := range snap.Vendors {
		if !v.Category.Valid() {
			t.Errorf("seed vendor %s has invalid category %q", v.ID, v.Category)
		}
	}
}
