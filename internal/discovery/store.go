// Package discovery tracks counterparty addresses derived from root-wallet
// activity. Each root wallet owns a bounded set of tracked addresses with
// least-recently-updated eviction, so the store never grows past its capacity
// no matter how much activity the roots produce.
package discovery

import (
	"time"
)

// RootID identifies one of the two root wallets whose activity seeds discovery.
type RootID int

// The two root wallets configured at startup.
const (
	RootWalletOne RootID = 1
	RootWalletTwo RootID = 2
)

// trackedAddress is a counterparty address observed transacting with a root
// wallet, stamped with the time of its most recent activity.
type trackedAddress struct {
	address     string
	lastUpdated time.Time
}

// Store holds the per-root-wallet sets of tracked addresses.
//
// Store is not safe for concurrent use; per the engine's ownership model each
// root wallet's entries are only ever touched from that wallet's event
// handler, and the engine serializes Reset against the handlers.
type Store struct {
	capacity int
	tracked  map[RootID]map[string]*trackedAddress

	now func() time.Time // clock, swappable in tests
}

// defaultCapacity bounds each root wallet's tracked-address set.
const defaultCapacity = 1000

// Option defines a functional option for configuring the store.
type Option func(*Store)

// NewStore creates a Store with empty tracked sets for both root wallets.
func NewStore(opts ...Option) *Store {
	s := &Store{
		capacity: defaultCapacity,
		tracked:  make(map[RootID]map[string]*trackedAddress),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.Reset()
	return s
}

// Reset clears the tracked sets for both root wallets. It is called when
// tracking starts so a restart never inherits stale discovery state.
func (s *Store) Reset() {
	s.tracked[RootWalletOne] = make(map[string]*trackedAddress)
	s.tracked[RootWalletTwo] = make(map[string]*trackedAddress)
}

// RecordActivity registers activity between the given root wallet and a
// counterparty address. A known address only has its timestamp refreshed; a
// new address is inserted, evicting the least-recently-updated entry first
// when the root's set is at capacity.
func (s *Store) RecordActivity(rootID RootID, address string) {
	entries := s.tracked[rootID]
	if entries == nil {
		entries = make(map[string]*trackedAddress)
		s.tracked[rootID] = entries
	}

	if entry, ok := entries[address]; ok {
		entry.lastUpdated = s.now()
		return
	}

	if len(entries) >= s.capacity {
		s.evictOldest(entries)
	}

	entries[address] = &trackedAddress{
		address:     address,
		lastUpdated: s.now(),
	}
}

// evictOldest removes the entry with the smallest lastUpdated timestamp.
// Ties are broken by address order so eviction stays deterministic.
func (s *Store) evictOldest(entries map[string]*trackedAddress) {
	var oldest *trackedAddress
	for _, entry := range entries {
		if oldest == nil ||
			entry.lastUpdated.Before(oldest.lastUpdated) ||
			(entry.lastUpdated.Equal(oldest.lastUpdated) && entry.address < oldest.address) {
			oldest = entry
		}
	}

	if oldest != nil {
		delete(entries, oldest.address)
	}
}

// Contains reports whether the address is currently tracked for the root wallet.
func (s *Store) Contains(rootID RootID, address string) bool {
	_, ok := s.tracked[rootID][address]
	return ok
}

// Size returns the number of addresses currently tracked for the root wallet.
func (s *Store) Size(rootID RootID) int {
	return len(s.tracked[rootID])
}

// WithCapacity overrides the per-root-wallet capacity. Default: 1000.
func WithCapacity(n int) Option {
	return func(s *Store) {
		s.capacity = n
	}
}

// WithClock overrides the time source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}
