package watchengine

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/correlation"
	"github.com/gabapcia/tokenwatch/internal/discovery"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/retry"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// engineFixture bundles the engine under test with its mocked collaborators.
type engineFixture struct {
	ledger       *LedgerMock
	stateStorage *StateStorageMock
	alerts       *AlertNotifierMock
	budget       *ratebudget.BudgetMock

	store   *discovery.Store
	machine *correlation.Machine

	flushNotifier *balancewatch.FlushNotifierMock
	metadata      *balancewatch.TokenMetadataResolverMock

	svc *service
}

var testRoots = [2]RootWallet{
	{ID: 1, Address: "root-1"},
	{ID: 2, Address: "root-2"},
}

func newEngineFixture(t *testing.T) *engineFixture {
	f := &engineFixture{
		ledger:        NewLedgerMock(t),
		stateStorage:  NewStateStorageMock(t),
		alerts:        NewAlertNotifierMock(t),
		budget:        ratebudget.NewBudgetMock(t),
		store:         discovery.NewStore(),
		machine:       correlation.NewMachine("root-1", "root-2"),
		flushNotifier: balancewatch.NewFlushNotifierMock(t),
		metadata:      balancewatch.NewTokenMetadataResolverMock(t),
	}

	batcher := balancewatch.New(
		map[balancewatch.RootID]string{1: "root-1", 2: "root-2"},
		f.metadata,
		f.flushNotifier,
		balancewatch.WithWindow(20*time.Millisecond),
	)

	// Fast retry policy so metadata lookup failures resolve within test time.
	fastRetry := retry.New(
		retry.WithDelay(time.Millisecond),
		retry.WithMaxDelay(5*time.Millisecond),
	)

	f.svc = New(testRoots, f.ledger, f.stateStorage, f.alerts, f.store, f.machine, batcher, f.budget, WithRetry(fastRetry))
	return f
}

// expectSubscriptions wires a successful subscription for both roots and
// returns the send side of each event channel, keyed by root address.
func (f *engineFixture) expectSubscriptions(t *testing.T) map[string]chan AccountEvent {
	t.Helper()

	channels := make(map[string]chan AccountEvent, len(testRoots))
	for _, root := range testRoots {
		ch := make(chan AccountEvent, 16)
		channels[root.Address] = ch

		sub := NewSubscriptionMock(t)
		sub.EXPECT().Cancel().Return().Maybe()

		f.ledger.EXPECT().
			Subscribe(mock.Anything, root.Address).
			Return(ch, sub, nil).
			Once()
	}

	f.ledger.EXPECT().
		GetBalance(mock.Anything, mock.AnythingOfType("string")).
		Return(12.5, nil).
		Times(2)
	f.ledger.EXPECT().
		GetRecentSignature(mock.Anything, mock.AnythingOfType("string")).
		Return("sig-recent", nil).
		Times(2)

	return channels
}

func TestService_Start(t *testing.T) {
	t.Run("starts tracking and persists the state", func(t *testing.T) {
		f := newEngineFixture(t)
		f.expectSubscriptions(t)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.MatchedBy(func(s EngineState) bool { return s.Tracking })).
			Return(nil).
			Once()

		err := f.svc.Start(t.Context())
		require.NoError(t, err)

		status := f.svc.Status(t.Context())
		assert.Equal(t, "tracking", status.State)
		assert.False(t, status.TrackingSince.IsZero())
	})

	t.Run("returns ErrAlreadyTracking on a second start", func(t *testing.T) {
		f := newEngineFixture(t)
		f.expectSubscriptions(t)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		require.NoError(t, f.svc.Start(t.Context()))

		err := f.svc.Start(t.Context())
		assert.ErrorIs(t, err, ErrAlreadyTracking)
	})

	t.Run("stays stopped when a subscription fails", func(t *testing.T) {
		f := newEngineFixture(t)

		subErr := errors.New("websocket dial failed")

		okSub := NewSubscriptionMock(t)
		okSub.EXPECT().Cancel().Return().Maybe()

		okCh := make(chan AccountEvent)
		f.ledger.EXPECT().
			Subscribe(mock.Anything, "root-1").
			Return(okCh, okSub, nil).
			Maybe()
		f.ledger.EXPECT().
			Subscribe(mock.Anything, "root-2").
			Return(nil, nil, subErr).
			Once()
		f.ledger.EXPECT().
			GetBalance(mock.Anything, mock.AnythingOfType("string")).
			Return(0.0, nil).
			Maybe()
		f.ledger.EXPECT().
			GetRecentSignature(mock.Anything, mock.AnythingOfType("string")).
			Return("", nil).
			Maybe()

		err := f.svc.Start(t.Context())
		require.ErrorIs(t, err, subErr)

		status := f.svc.Status(t.Context())
		assert.Equal(t, "stopped", status.State)
	})

	t.Run("start succeeds even if persisting the state fails", func(t *testing.T) {
		f := newEngineFixture(t)
		f.expectSubscriptions(t)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.Anything).
			Return(errors.New("storage unavailable")).
			Once()

		err := f.svc.Start(t.Context())
		require.NoError(t, err)
		assert.Equal(t, "tracking", f.svc.Status(t.Context()).State)
	})

	t.Run("start resets previously discovered addresses", func(t *testing.T) {
		f := newEngineFixture(t)
		f.expectSubscriptions(t)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.Anything).
			Return(nil).
			Once()

		f.store.RecordActivity(discovery.RootWalletOne, "stale-address")

		require.NoError(t, f.svc.Start(t.Context()))

		assert.False(t, f.store.Contains(discovery.RootWalletOne, "stale-address"))
	})
}

func TestService_Stop(t *testing.T) {
	t.Run("stops tracking, cancels subscriptions, and persists the state", func(t *testing.T) {
		f := newEngineFixture(t)

		subs := make([]*SubscriptionMock, 0, len(testRoots))
		for _, root := range testRoots {
			ch := make(chan AccountEvent)

			sub := NewSubscriptionMock(t)
			sub.EXPECT().Cancel().Return().Once()
			subs = append(subs, sub)

			f.ledger.EXPECT().
				Subscribe(mock.Anything, root.Address).
				Return(ch, sub, nil).
				Once()
		}
		f.ledger.EXPECT().
			GetBalance(mock.Anything, mock.AnythingOfType("string")).
			Return(0.0, nil).
			Times(2)
		f.ledger.EXPECT().
			GetRecentSignature(mock.Anything, mock.AnythingOfType("string")).
			Return("", nil).
			Times(2)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.MatchedBy(func(s EngineState) bool { return s.Tracking })).
			Return(nil).
			Once()
		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.MatchedBy(func(s EngineState) bool { return !s.Tracking })).
			Return(nil).
			Once()

		require.NoError(t, f.svc.Start(t.Context()))
		require.NoError(t, f.svc.Stop(t.Context()))

		status := f.svc.Status(t.Context())
		assert.Equal(t, "stopped", status.State)
		assert.True(t, status.TrackingSince.IsZero())
	})

	t.Run("returns ErrAlreadyStopped when not tracking", func(t *testing.T) {
		f := newEngineFixture(t)

		err := f.svc.Stop(t.Context())
		assert.ErrorIs(t, err, ErrAlreadyStopped)
	})

	t.Run("start works again after a stop", func(t *testing.T) {
		f := newEngineFixture(t)

		for _, root := range testRoots {
			sub := NewSubscriptionMock(t)
			sub.EXPECT().Cancel().Return().Maybe()

			f.ledger.EXPECT().
				Subscribe(mock.Anything, root.Address).
				RunAndReturn(func(ctx context.Context, address string) (<-chan AccountEvent, Subscription, error) {
					return make(chan AccountEvent), sub, nil
				}).
				Times(2)
		}
		f.ledger.EXPECT().
			GetBalance(mock.Anything, mock.AnythingOfType("string")).
			Return(0.0, nil).
			Times(4)
		f.ledger.EXPECT().
			GetRecentSignature(mock.Anything, mock.AnythingOfType("string")).
			Return("", nil).
			Times(4)

		f.stateStorage.EXPECT().
			SaveEngineState(mock.Anything, mock.Anything).
			Return(nil).
			Times(3)

		require.NoError(t, f.svc.Start(t.Context()))
		require.NoError(t, f.svc.Stop(t.Context()))
		require.NoError(t, f.svc.Start(t.Context()))

		assert.Equal(t, "tracking", f.svc.Status(t.Context()).State)
	})
}

func TestService_Status(t *testing.T) {
	t.Run("reports counters while stopped", func(t *testing.T) {
		f := newEngineFixture(t)

		status := f.svc.Status(t.Context())

		assert.Equal(t, "stopped", status.State)
		assert.True(t, status.TrackingSince.IsZero())
		assert.Equal(t, 0, status.ConfirmedTokens)
		assert.Equal(t, map[int]int{1: 0, 2: 0}, status.TrackedByRoot)
	})

	t.Run("reflects discovery and correlation counters", func(t *testing.T) {
		f := newEngineFixture(t)

		f.store.RecordActivity(discovery.RootWalletOne, "addr-a")
		f.store.RecordActivity(discovery.RootWalletOne, "addr-b")
		f.store.RecordActivity(discovery.RootWalletTwo, "addr-c")

		f.machine.Observe(1, "mint-x")
		f.machine.Observe(2, "mint-x")

		status := f.svc.Status(t.Context())

		assert.Equal(t, map[int]int{1: 2, 2: 1}, status.TrackedByRoot)
		assert.Equal(t, 1, status.ConfirmedTokens)
	})
}
