// Package correlation decides when a token mint observed around the root
// wallets becomes notification-worthy. A mint is only interesting once
// activity involving it has been corroborated from the second root wallet
// after the first; one-sided activity is recorded but stays silent.
package correlation

import "sync"

// WalletID identifies which of the two root wallets reported an observation.
type WalletID int

// Action is the outcome of observing a token mint for a root wallet.
type Action int

const (
	// ActionNoOp means the observation changed nothing (e.g. the mint is ignored).
	ActionNoOp Action = iota

	// ActionTrack means the observation was recorded but is not yet notification-worthy.
	ActionTrack

	// ActionConfirm means both root wallets have now touched the mint:
	// a notification-worthy event exists.
	ActionConfirm

	// ActionIgnore means the mint was just marked as permanently ignored.
	ActionIgnore
)

// String returns the action name, mostly for logs.
func (a Action) String() string {
	switch a {
	case ActionTrack:
		return "track"
	case ActionConfirm:
		return "confirm"
	case ActionIgnore:
		return "ignore"
	default:
		return "noop"
	}
}

// entryState is the per-mint correlation state.
type entryState int

const (
	stateObservedByOne entryState = iota + 1 // seen only from root wallet 1
	stateObservedByTwo                       // seen only from root wallet 2
	stateConfirmed                           // corroborated by both root wallets
	stateIgnored                             // permanently excluded, absorbing
)

// observedBy maps a reporting wallet to its one-sided observation state.
func observedBy(walletID WalletID) entryState {
	if walletID == 2 {
		return stateObservedByTwo
	}
	return stateObservedByOne
}

// Machine holds the per-mint correlation entries. State lives in memory for
// the process lifetime only; it is intentionally not persisted across
// restarts.
//
// Entries are keyed globally by mint but may be observed from both wallets'
// event handlers, so access is guarded by a mutex.
type Machine struct {
	mu      sync.Mutex
	entries map[string]entryState

	rootAddresses map[string]struct{} // the root wallets' own addresses
}

// NewMachine creates a correlation machine. The root wallet addresses are
// used to detect degenerate self-references: a "mint" equal to either root
// address is permanently ignored.
func NewMachine(rootAddresses ...string) *Machine {
	roots := make(map[string]struct{}, len(rootAddresses))
	for _, addr := range rootAddresses {
		roots[addr] = struct{}{}
	}

	return &Machine{
		entries:       make(map[string]entryState),
		rootAddresses: roots,
	}
}

// Observe records that the given root wallet surfaced activity for the mint
// and returns what the caller should do about it:
//
//   - ActionIgnore: the mint is one of the root wallets' own addresses and
//     was just marked ignored.
//   - ActionNoOp: the mint is already ignored. Ignored is absorbing; no later
//     observation ever resurrects a mint.
//   - ActionConfirm: the other root wallet had already observed the mint (or
//     it was confirmed before); the entry is now confirmed. Re-confirmation
//     is idempotent and returns ActionConfirm again.
//   - ActionTrack: first sight, or a repeat from the same wallet; recorded
//     but not notification-worthy yet.
func (m *Machine) Observe(walletID WalletID, mint string) Action {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, isRoot := m.rootAddresses[mint]; isRoot {
		m.entries[mint] = stateIgnored
		return ActionIgnore
	}

	switch state := m.entries[mint]; state {
	case stateIgnored:
		return ActionNoOp

	case stateConfirmed:
		return ActionConfirm

	case observedBy(otherWallet(walletID)):
		m.entries[mint] = stateConfirmed
		return ActionConfirm

	default: // unseen, or already observed by this same wallet
		m.entries[mint] = observedBy(walletID)
		return ActionTrack
	}
}

// ConfirmedCount returns how many mints have reached the confirmed state.
// Used by the engine's status report.
func (m *Machine) ConfirmedCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	var n int
	for _, state := range m.entries {
		if state == stateConfirmed {
			n++
		}
	}
	return n
}

// otherWallet returns the root wallet that is not the given one.
func otherWallet(walletID WalletID) WalletID {
	if walletID == 1 {
		return 2
	}
	return 1
}
