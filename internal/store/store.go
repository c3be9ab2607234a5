// Package store is the single source of truth for every HRMS collection.
// All mutations happen here, one writer at a time, and each durable mutation
// is followed by a full snapshot write. There are no transactions: a failed
// snapshot write leaves the in-memory state as mutated.
package store

import (
	"errors"
	"log/slog"
	"sync"
	"time"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyHired  = errors.New("candidate already hired")
	ErrTerminalStage = errors.New("candidate stage is terminal")
	ErrNotEnrolled   = errors.New("not enrolled in course")
)

// Persister writes the durable snapshot. snapshot.File satisfies it.
type Persister interface {
	Save(v any) error
}

const DefaultToastTTL = 3 * time.Second

type Store struct {
	mu    sync.Mutex
	state Snapshot

	toasts   []Toast
	timers   map[string]*time.Timer
	toastTTL time.Duration

	persister Persister
	clock     func() time.Time
}

type Option func(*Store)

// WithToastTTL overrides how long a toast lives before self-dismissal.
func WithToastTTL(ttl time.Duration) Option {
	return func(s *Store) {
		if ttl > 0 {
			s.toastTTL = ttl
		}
	}
}

// WithClock fixes the store's notion of now. Used by tests.
func WithClock(clock func() time.Time) Option {
	return func(s *Store) {
		if clock != nil {
			s.clock = clock
		}
	}
}

func New(p Persister, opts ...Option) *Store {
	s := &Store{
		state: Snapshot{
			SidebarOpen: true,
			Counters:    map[string]int{},
		},
		timers:    map[string]*time.Timer{},
		toastTTL:  DefaultToastTTL,
		persister: p,
		clock:     time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Restore replaces the store contents with a previously saved snapshot.
// Counters are restored too, so ids issued before a reload are never reissued.
func (s *Store) Restore(snap Snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if snap.Counters == nil {
		snap.Counters = map[string]int{}
	}
	s.state = snap
}

// Snapshot returns a deep copy of the durable state. Toasts are excluded,
// matching what gets written to disk.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Close stops pending toast timers. The durable state needs no flush: it is
// written after every mutation.
func (s *Store) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, timer := range s.timers {
		timer.Stop()
		delete(s.timers, id)
	}
	s.toasts = nil
}

func (s *Store) now() time.Time {
	return s.clock()
}

func (s *Store) today() string {
	return s.clock().Format("2006-01-02")
}

// persistLocked writes the durable snapshot. Callers hold s.mu. A failure is
// logged and otherwise ignored; the in-memory mutation stands.
func (s *Store) persistLocked() {
	if s.persister == nil {
		return
	}
	if err := s.persister.Save(s.state.clone()); err != nil {
		slog.Warn("snapshot write failed", "err", err)
	}
}
