// Package command maps inbound messaging-platform commands onto the watch
// engine's lifecycle and runs the long-poll loop that receives them.
package command

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/gabapcia/tokenwatch/internal/dispatch"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/tokenwatch/internal/watchengine"
)

// Update is one inbound message from the platform.
type Update struct {
	ID      int64  // monotonically increasing update identifier
	ChatID  string // recipient to reply to
	IsGroup bool   // whether the chat is a group
	Text    string // raw message text
}

// UpdateSource long-polls the messaging platform for inbound updates.
type UpdateSource interface {
	// GetUpdates returns updates with ID greater than offset, waiting up to
	// timeout for new ones.
	GetUpdates(ctx context.Context, offset int64, timeout time.Duration) ([]Update, error)
}

// pollTimeout is the long-poll wait passed to the platform.
const pollTimeout = 30 * time.Second

// helpText lists the supported commands.
const helpText = `Supported commands:
/start — start tracking the root wallets
/stop — stop tracking
/status — report tracking state and counters
/help — this message`

// Handler consumes inbound commands and drives the engine.
type Handler struct {
	engine  watchengine.Service
	source  UpdateSource
	replies *dispatch.Dispatcher
	budget  ratebudget.Budget
}

// New creates a command handler.
func New(engine watchengine.Service, source UpdateSource, replies *dispatch.Dispatcher, budget ratebudget.Budget) *Handler {
	return &Handler{
		engine:  engine,
		source:  source,
		replies: replies,
		budget:  budget,
	}
}

// Run long-polls for updates until ctx is canceled. Polling failures back off
// exponentially through the rate budget; a successful poll resets the
// backoff.
func (h *Handler) Run(ctx context.Context) error {
	var offset int64

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		updates, err := h.source.GetUpdates(ctx, offset, pollTimeout)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			backoff := h.budget.ReportTransportError(err)
			logger.Warn(ctx, "update polling failed, backing off",
				"backoff", backoff,
				"error", err,
			)

			if !chflow.Wait(ctx, backoff) {
				return ctx.Err()
			}
			continue
		}
		h.budget.ReportTransportSuccess()

		for _, update := range updates {
			if update.ID >= offset {
				offset = update.ID + 1
			}
			h.handleUpdate(ctx, update)
		}
	}
}

// handleUpdate maps one inbound command to an engine call and replies with
// the outcome. Unknown text is ignored silently.
func (h *Handler) handleUpdate(ctx context.Context, update Update) {
	cmd := strings.ToLower(strings.TrimSpace(update.Text))
	if i := strings.IndexAny(cmd, " @"); i > 0 {
		cmd = cmd[:i]
	}

	var reply string
	switch cmd {
	case "/start":
		reply = h.start(ctx)
	case "/stop":
		reply = h.stop(ctx)
	case "/status":
		reply = h.status(ctx)
	case "/help":
		reply = helpText
	default:
		return
	}

	err := h.replies.Send(ctx, dispatch.Message{
		Recipient: update.ChatID,
		Group:     update.IsGroup,
		Text:      reply,
	})
	if err != nil {
		logger.Error(ctx, "error replying to command",
			"command", cmd,
			"chat.id", update.ChatID,
			"error", err,
		)
	}
}

// start handles /start.
func (h *Handler) start(ctx context.Context) string {
	switch err := h.engine.Start(ctx); {
	case err == nil:
		return "Tracking started."
	case errors.Is(err, watchengine.ErrAlreadyTracking):
		return "Already tracking."
	default:
		logger.Error(ctx, "error starting engine", "error", err)
		return "Could not start tracking, see the service logs."
	}
}

// stop handles /stop.
func (h *Handler) stop(ctx context.Context) string {
	switch err := h.engine.Stop(ctx); {
	case err == nil:
		return "Tracking stopped."
	case errors.Is(err, watchengine.ErrAlreadyStopped):
		return "Already stopped."
	default:
		logger.Error(ctx, "error stopping engine", "error", err)
		return "Could not stop tracking, see the service logs."
	}
}

// status handles /status.
func (h *Handler) status(ctx context.Context) string {
	status := h.engine.Status(ctx)

	var sb strings.Builder
	fmt.Fprintf(&sb, "State: %s\n", status.State)
	if !status.TrackingSince.IsZero() {
		fmt.Fprintf(&sb, "Tracking since: %s\n", status.TrackingSince.UTC().Format(time.RFC3339))
	}
	fmt.Fprintf(&sb, "Confirmed tokens: %d\n", status.ConfirmedTokens)

	rootIDs := slices.Sorted(maps.Keys(status.TrackedByRoot))
	for _, rootID := range rootIDs {
		fmt.Fprintf(&sb, "Root wallet %d tracked addresses: %d\n", rootID, status.TrackedByRoot[rootID])
	}

	return strings.TrimRight(sb.String(), "\n")
}
