// Package balancewatch coalesces rapid-fire balance-change events on the root
// wallets into single consolidated notifications.
//
// Each root wallet owns one debounce window. The first enqueue arms the
// window's timer; later enqueues within the window only extend the batch
// content, never the deadline, which bounds worst-case notification latency
// to one window even under continuous activity. When the window expires the
// batch is classified against the last known balances, enriched with token
// metadata, and flushed as one message.
package balancewatch

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"

	"github.com/google/uuid"
)

// RootID identifies which root wallet a balance update belongs to.
type RootID int

// PendingUpdate is the latest balance seen for a mint within the current
// debounce window. Repeated updates to the same mint overwrite each other:
// intermediate values are never reported.
type PendingUpdate struct {
	Mint      string  // token mint address
	Balance   float64 // latest observed balance
	Signature string  // transaction signature that produced the update
}

// TokenMetadata describes a token as returned by the metadata resolver.
type TokenMetadata struct {
	Name     string  // human-readable token name
	Symbol   string  // ticker symbol
	PriceUSD float64 // current market price in USD
}

// TokenMetadataResolver resolves display metadata for a token mint.
//
// A resolver failure for one mint must never block the rest of a flush; the
// batcher skips the affected entry and logs.
type TokenMetadataResolver interface {
	// ResolveToken returns name, symbol, and price for the given mint.
	ResolveToken(ctx context.Context, mint string) (TokenMetadata, error)
}

// FlushNotifier delivers one consolidated balance-update message per flush.
type FlushNotifier interface {
	// NotifyBalanceUpdates sends the flushed message for the given root
	// wallet address. The text uses the platform's rich formatting.
	NotifyBalanceUpdates(ctx context.Context, wallet, text string) error
}

// classifiedUpdate pairs a pending update with the balance it is replacing.
type classifiedUpdate struct {
	PendingUpdate
	previous float64
}

// Batcher implements the per-wallet debounce window.
type Batcher struct {
	mu        sync.Mutex
	pending   map[RootID]map[string]PendingUpdate // mint -> latest update, per root
	timers    map[RootID]*time.Timer              // at most one armed timer per root
	lastKnown map[RootID]map[string]float64       // mint -> last reported balance, per root

	roots map[RootID]string // root wallet addresses, for message headers

	window         time.Duration // debounce window length
	maxNormalSwing float64       // balance deltas above this are flagged as unusual

	metadata TokenMetadataResolver
	notifier FlushNotifier
}

// defaultWindow is the debounce window applied when none is configured.
const defaultWindow = 8 * time.Second

// Option defines a functional option for configuring the batcher.
type Option func(*Batcher)

// New creates a Batcher for the given root wallets. roots maps each RootID to
// its wallet address, used in the flushed message header.
func New(roots map[RootID]string, metadata TokenMetadataResolver, notifier FlushNotifier, opts ...Option) *Batcher {
	b := &Batcher{
		pending:   make(map[RootID]map[string]PendingUpdate),
		timers:    make(map[RootID]*time.Timer),
		lastKnown: make(map[RootID]map[string]float64),
		roots:     roots,
		window:    defaultWindow,
		metadata:  metadata,
		notifier:  notifier,
	}
	for _, opt := range opts {
		opt(b)
	}

	for rootID := range roots {
		b.pending[rootID] = make(map[string]PendingUpdate)
		b.lastKnown[rootID] = make(map[string]float64)
	}

	return b
}

// Enqueue records a balance update for the root wallet, overwriting any
// earlier update for the same mint in the current window. If no window is
// open for the root, one is armed; an already-running window is left alone.
func (b *Batcher) Enqueue(ctx context.Context, rootID RootID, mint string, balance float64, signature string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	pending, ok := b.pending[rootID]
	if !ok {
		pending = make(map[string]PendingUpdate)
		b.pending[rootID] = pending
	}

	pending[mint] = PendingUpdate{
		Mint:      mint,
		Balance:   balance,
		Signature: signature,
	}

	if _, armed := b.timers[rootID]; armed {
		return
	}

	b.timers[rootID] = time.AfterFunc(b.window, func() {
		b.flush(ctx, rootID)
	})
}

// flush swaps out the root's pending batch, classifies each entry against the
// last known balances, and sends one consolidated message. Called from the
// window timer.
func (b *Batcher) flush(ctx context.Context, rootID RootID) {
	b.mu.Lock()

	batch := b.pending[rootID]
	b.pending[rootID] = make(map[string]PendingUpdate)
	delete(b.timers, rootID)

	known := b.lastKnown[rootID]
	if known == nil {
		known = make(map[string]float64)
		b.lastKnown[rootID] = known
	}

	updates := make([]classifiedUpdate, 0, len(batch))
	for mint, update := range batch {
		updates = append(updates, classifiedUpdate{
			PendingUpdate: update,
			previous:      known[mint],
		})
		known[mint] = update.Balance
	}

	b.mu.Unlock()

	if len(updates) == 0 {
		return
	}

	flushID := uuid.Must(uuid.NewV7()).String()

	text := b.buildMessage(ctx, flushID, updates)
	if text == "" {
		return
	}

	if err := b.notifier.NotifyBalanceUpdates(ctx, b.roots[rootID], text); err != nil {
		logger.Error(ctx, "error notifying balance updates",
			"flush.id", flushID,
			"flush.root", rootID,
			"error", err,
		)
	}
}

// buildMessage renders the flushed batch as one message, grouping newly
// received tokens and balance changes. Entries whose balance did not actually
// change are dropped; a metadata failure drops only the affected entry.
func (b *Batcher) buildMessage(ctx context.Context, flushID string, updates []classifiedUpdate) string {
	// Stable ordering keeps messages deterministic regardless of map iteration.
	sort.Slice(updates, func(i, j int) bool { return updates[i].Mint < updates[j].Mint })

	var newTokens, changed []string
	for _, update := range updates {
		switch {
		case update.previous == 0 && update.Balance > 0:
			line, err := b.formatNewToken(ctx, update)
			if err != nil {
				logger.Warn(ctx, "skipping balance update entry: metadata lookup failed",
					"flush.id", flushID,
					"token.mint", update.Mint,
					"error", err,
				)
				continue
			}
			newTokens = append(newTokens, line)

		case update.previous > 0 && update.previous != update.Balance:
			line, err := b.formatBalanceChange(ctx, update)
			if err != nil {
				logger.Warn(ctx, "skipping balance update entry: metadata lookup failed",
					"flush.id", flushID,
					"token.mint", update.Mint,
					"error", err,
				)
				continue
			}
			changed = append(changed, line)
		}
	}

	if len(newTokens) == 0 && len(changed) == 0 {
		return ""
	}

	var sb strings.Builder
	if len(newTokens) > 0 {
		sb.WriteString("*New tokens received*\n")
		sb.WriteString(strings.Join(newTokens, "\n"))
	}
	if len(changed) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString("*Balance changes*\n")
		sb.WriteString(strings.Join(changed, "\n"))
	}

	return sb.String()
}

// formatNewToken renders a "new token received" line.
func (b *Batcher) formatNewToken(ctx context.Context, update classifiedUpdate) (string, error) {
	meta, err := b.metadata.ResolveToken(ctx, update.Mint)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("• %s (%s): %s @ $%s — `%s`",
		meta.Symbol,
		meta.Name,
		formatAmount(update.Balance),
		formatAmount(meta.PriceUSD),
		update.Signature,
	), nil
}

// formatBalanceChange renders a "balance changed" line, flagging swings above
// the configured threshold.
func (b *Batcher) formatBalanceChange(ctx context.Context, update classifiedUpdate) (string, error) {
	meta, err := b.metadata.ResolveToken(ctx, update.Mint)
	if err != nil {
		return "", err
	}

	line := fmt.Sprintf("• %s (%s): %s → %s — `%s`",
		meta.Symbol,
		meta.Name,
		formatAmount(update.previous),
		formatAmount(update.Balance),
		update.Signature,
	)

	if b.maxNormalSwing > 0 && swing(update.previous, update.Balance) > b.maxNormalSwing {
		line += " (unusual swing)"
	}

	return line, nil
}

// swing returns the absolute balance delta.
func swing(previous, current float64) float64 {
	d := current - previous
	if d < 0 {
		d = -d
	}
	return d
}

// formatAmount renders a balance without trailing zero noise.
func formatAmount(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.6f", v), "0"), ".")
}

// WithWindow overrides the debounce window length. Default: 8 seconds.
func WithWindow(d time.Duration) Option {
	return func(b *Batcher) {
		b.window = d
	}
}

// WithMaxNormalSwing sets the largest single balance swing considered normal.
// Changes above the threshold are annotated in the flushed message. Zero
// disables the annotation.
func WithMaxNormalSwing(v float64) Option {
	return func(b *Batcher) {
		b.maxNormalSwing = v
	}
}
