// Package dispatch formats and sends outbound notifications, pacing every
// send through the rate budget and absorbing provider throttling.
package dispatch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
)

// ErrMessageDropped is returned when a message could not be delivered and
// will not be retried. Drops are logged but never surfaced back to the
// messaging channel, to avoid notification loops.
var ErrMessageDropped = errors.New("message dropped")

// ThrottledError is the distinguished error a Messenger returns when the
// provider rejected a send and asked the client to retry later.
type ThrottledError struct {
	RetryAfter time.Duration // how long the provider asked us to wait
}

// Error implements the error interface.
func (e *ThrottledError) Error() string {
	return fmt.Sprintf("throttled by provider, retry after %s", e.RetryAfter)
}

// Messenger delivers a single outbound message to the messaging platform.
//
// Implementations must return a *ThrottledError when the platform reports
// throttling with a retry-after hint; any other error is treated as
// non-retryable by the dispatcher.
type Messenger interface {
	// SendMessage sends text to the recipient. When richFormatting is true
	// the platform's markup mode is enabled.
	SendMessage(ctx context.Context, recipient, text string, richFormatting bool) error
}

// Message is one outbound notification.
type Message struct {
	Recipient      string // platform recipient identifier (user or group chat)
	Group          bool   // whether the recipient is a group chat
	Text           string // message body
	RichFormatting bool   // enable platform markup
}

// Dispatcher sends messages one at a time, consulting the rate budget before
// every attempt and retrying a bounded number of times on throttling.
type Dispatcher struct {
	messenger Messenger
	budget    ratebudget.Budget

	throttleRetries int // extra attempts allowed after a throttle response
}

// defaultThrottleRetries bounds how many times a throttled message is
// re-attempted before being dropped.
const defaultThrottleRetries = 1

// Option defines a functional option for configuring the dispatcher.
type Option func(*Dispatcher)

// New creates a Dispatcher backed by the given messenger and rate budget.
func New(messenger Messenger, budget ratebudget.Budget, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		messenger:       messenger,
		budget:          budget,
		throttleRetries: defaultThrottleRetries,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Send delivers the message. Before every attempt it blocks on the rate
// budget. A throttle response feeds the provider's retry-after back into the
// budget and the same message is re-attempted once the wait elapses, up to
// the configured retry bound. Any other transport error drops the message.
func (d *Dispatcher) Send(ctx context.Context, msg Message) error {
	var lastErr error

	for attempt := 0; attempt <= d.throttleRetries; attempt++ {
		if err := d.budget.Await(ctx, msg.Recipient, msg.Group); err != nil {
			return err
		}

		err := d.messenger.SendMessage(ctx, msg.Recipient, msg.Text, msg.RichFormatting)
		if err == nil {
			return nil
		}
		lastErr = err

		var throttled *ThrottledError
		if errors.As(err, &throttled) {
			d.budget.ReportThrottled(msg.Recipient, throttled.RetryAfter)
			logger.Warn(ctx, "send throttled by provider",
				"message.recipient", msg.Recipient,
				"throttle.retry_after", throttled.RetryAfter,
				"send.attempt", attempt+1,
			)
			continue
		}

		break // non-throttle transport error: no retry
	}

	logger.Error(ctx, "dropping undeliverable message",
		"message.recipient", msg.Recipient,
		"error", lastErr,
	)
	return fmt.Errorf("%w: %w", ErrMessageDropped, lastErr)
}

// WithThrottleRetries overrides how many re-attempts a throttled message
// gets. Default: 1.
func WithThrottleRetries(n int) Option {
	return func(d *Dispatcher) {
		d.throttleRetries = n
	}
}
