// Package ratebudget tracks outbound send budgets for a messaging platform.
//
// It enforces three independent constraints before a send is allowed: a
// per-recipient window with its own cap (short for direct recipients, longer
// for groups), one global window shared across all recipients, and a minimum
// inter-message spacing per recipient. It also absorbs provider throttling
// signals (retry-after deadlines) and drives a capped exponential backoff for
// the ingress polling loop.
package ratebudget

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
)

// Budget defines the send-pacing contract consulted before every outbound
// message and fed with provider and transport feedback.
type Budget interface {
	// Await blocks until a send to the given recipient is permitted: the
	// global window has spare capacity, the recipient's window has spare
	// capacity, and the minimum inter-message spacing has elapsed. The slot
	// is reserved atomically before Await returns, so two concurrent callers
	// can never both claim the same spare capacity.
	//
	// It returns the context error if ctx is canceled while waiting.
	Await(ctx context.Context, recipient string, isGroup bool) error

	// ReportThrottled records a provider throttling signal for the recipient.
	// The recipient's window is treated as exhausted until the retry-after
	// deadline passes; subsequent Await calls block until then.
	ReportThrottled(recipient string, retryAfter time.Duration)

	// ReportTransportError registers a failure of the ingress polling loop
	// and returns how long the caller should back off before polling again.
	// Consecutive errors grow the backoff exponentially up to a cap.
	ReportTransportError(err error) time.Duration

	// ReportTransportSuccess resets the ingress error counter to zero.
	ReportTransportSuccess()
}

// recipientState tracks the sliding send window for a single recipient.
// The global window shares the same shape.
type recipientState struct {
	windowStart time.Time // start of the current counting window
	sendCount   int       // sends recorded in the current window
	lastSend    time.Time // time of the most recent send
	blockedTill time.Time // provider retry-after deadline (zero when not throttled)
}

// config holds all tunable pacing parameters.
type config struct {
	directWindow  time.Duration // window length for direct recipients
	directCap     int           // sends allowed per direct window
	groupWindow   time.Duration // window length for group recipients
	groupCap      int           // sends allowed per group window
	globalWindow  time.Duration // shared window length across all recipients
	globalCap     int           // sends allowed per global window
	directSpacing time.Duration // minimum gap between sends to one direct recipient
	groupSpacing  time.Duration // minimum gap between sends to one group recipient
	waitFloor     time.Duration // minimum sleep granularity to avoid busy-waiting
	backoffBase   time.Duration // initial ingress backoff interval
	backoffCap    time.Duration // upper bound on the ingress backoff interval
}

// Option defines a functional option for configuring the budget.
type Option func(*config)

// budget is the default Budget implementation. All state is guarded by mu;
// Await holds the lock while checking and reserving, never while sleeping.
type budget struct {
	mu         sync.Mutex
	recipients map[string]*recipientState
	global     recipientState

	transportErrors int // consecutive ingress polling failures

	cfg config
}

// Compile-time assertion that budget implements Budget.
var _ Budget = (*budget)(nil)

// New creates a Budget with the provided options. The defaults follow the
// common bot-platform limits: 1 message per second per direct recipient,
// 20 per minute per group, 30 per second globally.
func New(opts ...Option) *budget {
	cfg := config{
		directWindow:  time.Second,
		directCap:     1,
		groupWindow:   time.Minute,
		groupCap:      20,
		globalWindow:  time.Second,
		globalCap:     30,
		directSpacing: time.Second,
		groupSpacing:  3 * time.Second,
		waitFloor:     50 * time.Millisecond,
		backoffBase:   500 * time.Millisecond,
		backoffCap:    30 * time.Second,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &budget{
		recipients: make(map[string]*recipientState),
		cfg:        cfg,
	}
}

// state returns the tracked window for the recipient, creating it on first use.
func (b *budget) state(recipient string) *recipientState {
	st, ok := b.recipients[recipient]
	if !ok {
		st = &recipientState{}
		b.recipients[recipient] = st
	}
	return st
}

// windowWait returns how long until the given window state can accept another
// send, considering the window cap and any retry-after deadline. A zero or
// negative result means the window has spare capacity right now.
func windowWait(st *recipientState, now time.Time, window time.Duration, cap int) time.Duration {
	if wait := st.blockedTill.Sub(now); wait > 0 {
		return wait
	}

	if now.Sub(st.windowStart) >= window {
		return 0 // window expired, counting restarts on the next reservation
	}

	if st.sendCount < cap {
		return 0
	}

	return st.windowStart.Add(window).Sub(now)
}

// nextWait computes the time until a send to the recipient is permitted.
// The result is the maximum of the global window, recipient window, and
// inter-message spacing constraints, since all three must hold at once.
func (b *budget) nextWait(now time.Time, st *recipientState, isGroup bool) time.Duration {
	window, cap, spacing := b.cfg.directWindow, b.cfg.directCap, b.cfg.directSpacing
	if isGroup {
		window, cap, spacing = b.cfg.groupWindow, b.cfg.groupCap, b.cfg.groupSpacing
	}

	wait := windowWait(st, now, window, cap)

	if w := windowWait(&b.global, now, b.cfg.globalWindow, b.cfg.globalCap); w > wait {
		wait = w
	}

	if !st.lastSend.IsZero() {
		if w := st.lastSend.Add(spacing).Sub(now); w > wait {
			wait = w
		}
	}

	return wait
}

// reserve records a send against both the recipient and global windows,
// rolling either window forward if it has expired.
func (b *budget) reserve(now time.Time, st *recipientState, isGroup bool) {
	window := b.cfg.directWindow
	if isGroup {
		window = b.cfg.groupWindow
	}

	for _, w := range []struct {
		st     *recipientState
		window time.Duration
	}{{st, window}, {&b.global, b.cfg.globalWindow}} {
		if now.Sub(w.st.windowStart) >= w.window {
			w.st.windowStart = now
			w.st.sendCount = 0
		}
		w.st.sendCount++
	}

	st.lastSend = now
	st.blockedTill = time.Time{}
}

// Await implements Budget. It recomputes the wait on every wake-up since the
// recipient, global, and spacing constraints may reset at different times.
func (b *budget) Await(ctx context.Context, recipient string, isGroup bool) error {
	for {
		b.mu.Lock()
		now := time.Now()
		st := b.state(recipient)

		wait := b.nextWait(now, st, isGroup)
		if wait <= 0 {
			b.reserve(now, st, isGroup)
			b.mu.Unlock()
			return nil
		}
		b.mu.Unlock()

		if wait < b.cfg.waitFloor {
			wait = b.cfg.waitFloor
		}

		if !chflow.Wait(ctx, wait) {
			return ctx.Err()
		}
	}
}

// ReportThrottled implements Budget.
func (b *budget) ReportThrottled(recipient string, retryAfter time.Duration) {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := b.state(recipient)
	st.blockedTill = time.Now().Add(retryAfter)
}

// maxBackoffShift bounds the exponent so the doubling below cannot overflow
// long before the configured cap kicks in.
const maxBackoffShift = 16

// ReportTransportError implements Budget.
func (b *budget) ReportTransportError(err error) time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.transportErrors < maxBackoffShift {
		b.transportErrors++
	}

	backoff := b.cfg.backoffBase << (b.transportErrors - 1)
	if backoff > b.cfg.backoffCap || backoff <= 0 {
		backoff = b.cfg.backoffCap
	}
	return backoff
}

// ReportTransportSuccess implements Budget.
func (b *budget) ReportTransportSuccess() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.transportErrors = 0
}

// WithDirectLimits sets the window length and send cap for direct recipients.
func WithDirectLimits(window time.Duration, cap int) Option {
	return func(c *config) {
		c.directWindow = window
		c.directCap = cap
	}
}

// WithGroupLimits sets the window length and send cap for group recipients.
func WithGroupLimits(window time.Duration, cap int) Option {
	return func(c *config) {
		c.groupWindow = window
		c.groupCap = cap
	}
}

// WithGlobalLimits sets the shared window length and cap across all recipients.
func WithGlobalLimits(window time.Duration, cap int) Option {
	return func(c *config) {
		c.globalWindow = window
		c.globalCap = cap
	}
}

// WithSpacing sets the minimum gap between consecutive sends to the same
// recipient, for direct and group recipients respectively.
func WithSpacing(direct, group time.Duration) Option {
	return func(c *config) {
		c.directSpacing = direct
		c.groupSpacing = group
	}
}

// WithWaitFloor sets the minimum sleep granularity used while waiting.
func WithWaitFloor(d time.Duration) Option {
	return func(c *config) {
		c.waitFloor = d
	}
}

// WithTransportBackoff sets the base and cap for the ingress polling backoff.
func WithTransportBackoff(base, cap time.Duration) Option {
	return func(c *config) {
		c.backoffBase = base
		c.backoffCap = cap
	}
}
