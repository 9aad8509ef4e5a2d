package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/dispatch"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
	"github.com/gabapcia/tokenwatch/internal/watchengine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// handlerFixture bundles the handler under test with its mocked collaborators.
type handlerFixture struct {
	engine    *watchengine.ServiceMock
	source    *UpdateSourceMock
	messenger *dispatch.MessengerMock
	budget    *ratebudget.BudgetMock

	handler *Handler
}

func newHandlerFixture(t *testing.T) *handlerFixture {
	f := &handlerFixture{
		engine:    watchengine.NewServiceMock(t),
		source:    NewUpdateSourceMock(t),
		messenger: dispatch.NewMessengerMock(t),
		budget:    ratebudget.NewBudgetMock(t),
	}

	f.handler = New(f.engine, f.source, dispatch.New(f.messenger, f.budget), f.budget)
	return f
}

// expectReply wires a successful reply to the given chat and captures the text.
func (f *handlerFixture) expectReply(chatID string, isGroup bool) *string {
	var sent string

	f.budget.EXPECT().
		Await(mock.Anything, chatID, isGroup).
		Return(nil).
		Once()
	f.messenger.EXPECT().
		SendMessage(mock.Anything, chatID, mock.AnythingOfType("string"), false).
		RunAndReturn(func(ctx context.Context, recipient, text string, richFormatting bool) error {
			sent = text
			return nil
		}).
		Once()

	return &sent
}

func TestHandler_handleUpdate(t *testing.T) {
	t.Run("/start starts the engine", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Start(mock.Anything).Return(nil).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/start"})

		assert.Equal(t, "Tracking started.", *reply)
	})

	t.Run("/start while tracking reports already tracking", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Start(mock.Anything).Return(watchengine.ErrAlreadyTracking).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/start"})

		assert.Equal(t, "Already tracking.", *reply)
	})

	t.Run("/start failure reports a generic error", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Start(mock.Anything).Return(errors.New("subscribe failed")).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/start"})

		assert.Contains(t, *reply, "Could not start tracking")
	})

	t.Run("/stop stops the engine", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Stop(mock.Anything).Return(nil).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/stop"})

		assert.Equal(t, "Tracking stopped.", *reply)
	})

	t.Run("/stop while stopped reports already stopped", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Stop(mock.Anything).Return(watchengine.ErrAlreadyStopped).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/stop"})

		assert.Equal(t, "Already stopped.", *reply)
	})

	t.Run("/status reports engine counters", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().
			Status(mock.Anything).
			Return(watchengine.Status{
				State:           "tracking",
				TrackingSince:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
				TrackedByRoot:   map[int]int{1: 7, 2: 3},
				ConfirmedTokens: 2,
			}).
			Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/status"})

		assert.Contains(t, *reply, "State: tracking")
		assert.Contains(t, *reply, "Tracking since: 2025-03-01T12:00:00Z")
		assert.Contains(t, *reply, "Confirmed tokens: 2")
		assert.Contains(t, *reply, "Root wallet 1 tracked addresses: 7")
		assert.Contains(t, *reply, "Root wallet 2 tracked addresses: 3")
	})

	t.Run("/help lists the supported commands", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/help"})

		assert.Equal(t, helpText, *reply)
	})

	t.Run("unknown text is ignored silently", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "hello there"})
	})

	t.Run("commands are case-insensitive and tolerate bot mentions", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		f.engine.EXPECT().Start(mock.Anything).Return(nil).Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "  /START@watchbot  "})

		assert.Equal(t, "Tracking started.", *reply)
	})

	t.Run("group updates reply through the group budget", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("group-1", true)

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "group-1", IsGroup: true, Text: "/help"})

		assert.Equal(t, helpText, *reply)
	})

	t.Run("reply failures are swallowed", func(t *testing.T) {
		f := newHandlerFixture(t)

		f.budget.EXPECT().
			Await(mock.Anything, "chat-1", false).
			Return(nil).
			Once()
		f.messenger.EXPECT().
			SendMessage(mock.Anything, "chat-1", mock.AnythingOfType("string"), false).
			Return(errors.New("send failed")).
			Once()

		f.handler.handleUpdate(t.Context(), Update{ID: 1, ChatID: "chat-1", Text: "/help"})
	})
}

func TestHandler_Run(t *testing.T) {
	t.Run("processes updates and advances the offset", func(t *testing.T) {
		f := newHandlerFixture(t)
		reply := f.expectReply("chat-1", false)

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		f.source.EXPECT().
			GetUpdates(mock.Anything, int64(0), pollTimeout).
			Return([]Update{{ID: 5, ChatID: "chat-1", Text: "/help"}}, nil).
			Once()
		f.budget.EXPECT().ReportTransportSuccess().Return().Once()

		f.source.EXPECT().
			GetUpdates(mock.Anything, int64(6), pollTimeout).
			RunAndReturn(func(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
				cancel()
				return nil, ctx.Err()
			}).
			Once()

		err := f.handler.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Equal(t, helpText, *reply)
	})

	t.Run("polling failures back off and polling resumes", func(t *testing.T) {
		f := newHandlerFixture(t)

		ctx, cancel := context.WithCancel(t.Context())
		defer cancel()

		pollErr := errors.New("network down")

		f.source.EXPECT().
			GetUpdates(mock.Anything, int64(0), pollTimeout).
			Return(nil, pollErr).
			Once()
		f.budget.EXPECT().
			ReportTransportError(pollErr).
			Return(time.Millisecond).
			Once()

		f.source.EXPECT().
			GetUpdates(mock.Anything, int64(0), pollTimeout).
			RunAndReturn(func(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error) {
				cancel()
				return nil, ctx.Err()
			}).
			Once()

		err := f.handler.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("returns immediately when the context is already canceled", func(t *testing.T) {
		f := newHandlerFixture(t)

		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		err := f.handler.Run(ctx)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNew(t *testing.T) {
	t.Run("creates handler with its collaborators", func(t *testing.T) {
		f := newHandlerFixture(t)

		require.NotNil(t, f.handler)
		assert.Equal(t, f.engine, f.handler.engine)
		assert.Equal(t, f.source, f.handler.source)
	})
}
