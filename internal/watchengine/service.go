// Package watchengine orchestrates the real-time correlation pipeline: it
// consumes ledger events for the two root wallets, feeds counterparty
// discovery and cross-wallet token correlation, routes balance changes into
// the debounce batcher, and dispatches confirmed-token alerts.
package watchengine

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/correlation"
	"github.com/gabapcia/tokenwatch/internal/discovery"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/retry"

	"golang.org/x/sync/errgroup"
)

var (
	// ErrAlreadyTracking is returned by Start when the engine is already
	// tracking. It reports an idempotent no-op, not a failure.
	ErrAlreadyTracking = errors.New("already tracking")

	// ErrAlreadyStopped is returned by Stop when the engine is not
	// tracking. It reports an idempotent no-op, not a failure.
	ErrAlreadyStopped = errors.New("already stopped")
)

// lifecycleState is the engine's coarse lifecycle position.
type lifecycleState int

const (
	stateStopped lifecycleState = iota
	stateStarting
	stateTracking
	stateStopping
)

// String returns the lifecycle state name for status reports and logs.
func (s lifecycleState) String() string {
	switch s {
	case stateStarting:
		return "starting"
	case stateTracking:
		return "tracking"
	case stateStopping:
		return "stopping"
	default:
		return "stopped"
	}
}

// RootWallet is one of the two configured wallets whose activity seeds
// discovery and correlation. Immutable after startup.
type RootWallet struct {
	ID      int    // 1 or 2
	Address string // ledger address
}

// Status is the read-only snapshot served to the /status command.
type Status struct {
	State           string      // lifecycle state name
	TrackingSince   time.Time   // when tracking last started (zero if stopped)
	TrackedByRoot   map[int]int // discovered-address count per root wallet
	ConfirmedTokens int         // mints confirmed by both wallets
}

// Service defines the engine lifecycle exposed to the command layer.
type Service interface {
	// Start begins tracking both root wallets. It returns ErrAlreadyTracking
	// if the engine is already tracking, or an error if any ledger
	// subscription fails (in which case the engine stays stopped).
	Start(ctx context.Context) error

	// Stop cancels all active ledger subscriptions. It returns
	// ErrAlreadyStopped if the engine is not tracking.
	Stop(ctx context.Context) error

	// Status reports the engine's current lifecycle state and counters.
	Status(ctx context.Context) Status
}

// closeFunc tears down the engine's background routines and subscriptions.
type closeFunc func()

// service is the concrete engine implementation.
type service struct {
	mu        sync.Mutex
	state     lifecycleState
	startedAt time.Time
	closeFunc closeFunc

	roots [2]RootWallet

	ledger       Ledger
	stateStorage StateStorage
	alerts       AlertNotifier

	discovery   *discovery.Store
	correlation *correlation.Machine
	batcher     *balancewatch.Batcher

	budget ratebudget.Budget
	retry  retry.Retry
}

// Compile-time check that *service implements Service.
var _ Service = (*service)(nil)

// config holds optional dependencies resolved by New.
type config struct {
	retry retry.Retry
}

// Option defines a functional option for configuring the engine.
type Option func(*config)

// New wires the engine from its collaborators. The discovery store,
// correlation machine, and batcher are owned state objects passed in by the
// caller; the engine never reaches for ambient singletons.
func New(
	roots [2]RootWallet,
	ledger Ledger,
	stateStorage StateStorage,
	alerts AlertNotifier,
	store *discovery.Store,
	machine *correlation.Machine,
	batcher *balancewatch.Batcher,
	budget ratebudget.Budget,
	opts ...Option,
) *service {
	cfg := config{
		retry: retry.New(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		roots:        roots,
		ledger:       ledger,
		stateStorage: stateStorage,
		alerts:       alerts,
		discovery:    store,
		correlation:  machine,
		batcher:      batcher,
		budget:       budget,
		retry:        cfg.retry,
	}
}

// Start implements Service.
func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == stateTracking || s.state == stateStarting {
		return ErrAlreadyTracking
	}
	s.state = stateStarting

	s.discovery.Reset()

	engineCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	subscriptions := make([]Subscription, 0, len(s.roots))
	var subMu sync.Mutex

	g, gctx := errgroup.WithContext(engineCtx)
	for _, root := range s.roots {
		g.Go(func() error {
			eventsCh, sub, err := s.ledger.Subscribe(gctx, root.Address)
			if err != nil {
				return err
			}

			subMu.Lock()
			subscriptions = append(subscriptions, sub)
			subMu.Unlock()

			s.logRootSnapshot(gctx, root)

			go s.handleAccountEvents(engineCtx, root, eventsCh)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		for _, sub := range subscriptions {
			sub.Cancel()
		}
		cancel()
		s.state = stateStopped
		return err
	}

	s.closeFunc = func() {
		for _, sub := range subscriptions {
			sub.Cancel()
		}
		cancel()
	}
	s.state = stateTracking
	s.startedAt = time.Now()

	s.persistState(ctx, true)
	return nil
}

// Stop implements Service.
func (s *service) Stop(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != stateTracking {
		return ErrAlreadyStopped
	}
	s.state = stateStopping

	if s.closeFunc != nil {
		s.closeFunc()
		s.closeFunc = nil
	}

	s.state = stateStopped
	s.startedAt = time.Time{}

	s.persistState(ctx, false)
	return nil
}

// Status implements Service.
func (s *service) Status(ctx context.Context) Status {
	s.mu.Lock()
	defer s.mu.Unlock()

	trackedByRoot := make(map[int]int, len(s.roots))
	for _, root := range s.roots {
		trackedByRoot[root.ID] = s.discovery.Size(discovery.RootID(root.ID))
	}

	return Status{
		State:           s.state.String(),
		TrackingSince:   s.startedAt,
		TrackedByRoot:   trackedByRoot,
		ConfirmedTokens: s.correlation.ConfirmedCount(),
	}
}

// logRootSnapshot records the root wallet's balance and most recent signature
// at subscription time. Point-query failures here are informational only.
func (s *service) logRootSnapshot(ctx context.Context, root RootWallet) {
	balance, err := s.ledger.GetBalance(ctx, root.Address)
	if err != nil {
		logger.Warn(ctx, "could not fetch root wallet balance", "root.id", root.ID, "error", err)
		return
	}

	signature, err := s.ledger.GetRecentSignature(ctx, root.Address)
	if err != nil {
		logger.Warn(ctx, "could not fetch root wallet recent signature", "root.id", root.ID, "error", err)
		return
	}

	logger.Info(ctx, "tracking root wallet",
		"root.id", root.ID,
		"root.address", root.Address,
		"root.balance", balance,
		"root.recent_signature", signature,
	)
}

// isTracking reports whether the engine is currently tracking. Event handlers
// consult it before dispatching; a handler already past the check may still
// complete its send after a stop, which is accepted.
func (s *service) isTracking() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state == stateTracking
}

// persistState writes the tracking flag. Persistence failures are logged but
// never block a lifecycle transition.
func (s *service) persistState(ctx context.Context, tracking bool) {
	state := EngineState{
		Tracking:    tracking,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.stateStorage.SaveEngineState(ctx, state); err != nil {
		logger.Error(ctx, "failed to persist engine state",
			"state.tracking", tracking,
			"error", err,
		)
	}
}

// WithRetry overrides the retry policy used for ledger point queries.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}
