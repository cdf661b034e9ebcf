// Package store holds the authoritative in-memory snapshot of all collections
// and provides the mutation surface the rest of the application talks to.
//
// The store is deliberately permissive: mutations referencing missing ids are
// no-ops rather than errors, and referential checks (vendor in use, duplicate
// barcodes) belong to the policy layer. After every effective mutation the
// snapshot is persisted and subscribers are notified synchronously.
package store

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dukerupert/pricetrack/internal/ident"
	"github.com/dukerupert/pricetrack/internal/model"
)

// Persister saves the full snapshot to durable storage. Save failures are
// non-fatal: the store logs them and keeps operating in memory.
type Persister interface {
	Save(snap model.Snapshot) error
}

// Event describes a completed mutation.
type Event struct {
	Entity string `json:"entity"`
	Action string `json:"action"`
	ID     string `json:"id"`
}

// Subscriber receives each event together with a snapshot taken after the
// mutation completed. The snapshot is a deep copy and safe to retain.
type Subscriber func(ev Event, snap model.Snapshot)

// Store is the application state container. A single mutex serializes
// mutations, so no two operations ever interleave mid-mutation.
type Store struct {
	mu   sync.Mutex
	snap model.Snapshot

	newID     ident.Generator
	now       func() time.Time
	persister Persister
	logger    *slog.Logger
	subs      []Subscriber
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator overrides the identifier generator.
func WithIDGenerator(g ident.Generator) Option {
	return func(s *Store) { s.newID = g }
}

// WithClock overrides the time source used for creation dates.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithPersister sets the persistence adapter invoked after each mutation.
func WithPersister(p Persister) Option {
	return func(s *Store) { s.persister = p }
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// New creates a Store initialized with the given snapshot.
func New(initial model.Snapshot, opts ...Option) *Store {
	s := &Store{
		snap:   initial.Clone(),
		newID:  ident.New(),
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Subscribe registers a subscriber for mutation events. Not safe to call
// concurrently with mutations; wire subscribers up during construction.
func (s *Store) Subscribe(fn Subscriber) {
	s.subs = append(s.subs, fn)
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() model.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snap.Clone()
}

// Replace swaps in a wholly new snapshot. Used by backup restore.
func (s *Store) Replace(snap model.Snapshot) {
	s.mu.Lock()
	s.snap = snap.Clone()
	after := s.commit()
	s.mu.Unlock()
	s.notify(Event{Entity: "snapshot", Action: "replaced"}, after)
}

// commit persists the current snapshot and returns a clone for notification.
// Must be called with s.mu held.
func (s *Store) commit() model.Snapshot {
	snap := s.snap.Clone()
	if s.persister != nil {
		if err := s.persister.Save(snap); err != nil {
			s.logger.Warn("persist snapshot", "error", err)
		}
	}
	return snap
}

// notify runs subscribers outside the store lock, after the mutation and its
// persistence have completed.
func (s *Store) notify(ev Event, snap model.Snapshot) {
	for _, fn := range s.subs {
		fn(ev, snap)
	}
}

func (s *Store) today() model.Date {
	return model.DateOf(s.now())
}
