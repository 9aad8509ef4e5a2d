package watchengine

import "context"

// AccountEvent is one push event delivered by the ledger for a subscribed
// address. Either Err is set (a runtime subscription failure that the engine
// should back off on) or the event fields describe the observed activity.
type AccountEvent struct {
	// Signature is the transaction signature that produced the event.
	Signature string

	// InvolvedAddresses lists every address named by the transaction,
	// including the subscribed address itself.
	InvolvedAddresses []string

	// Mint is the token mint the transaction interacted with, when the
	// event is a token-contract interaction. Empty otherwise.
	Mint string

	// Balance is the subscribed wallet's post-event balance for Mint, when
	// the event is a balance change on the wallet itself. Nil otherwise.
	Balance *float64

	// Err carries a transient subscription failure. The remaining fields
	// are zero when Err is set.
	Err error
}

// Subscription is the handle for one active ledger subscription. The cancel
// behavior is decided once at creation time by the ledger adapter.
type Subscription interface {
	// Cancel tears down the subscription. It is safe to call more than once.
	Cancel()
}

// TokenMetadata describes a token mint as resolved by the ledger's metadata
// source.
type TokenMetadata struct {
	Name     string  // human-readable token name
	Symbol   string  // ticker symbol
	PriceUSD float64 // current market price in USD
}

// Ledger is the engine's view of the ledger RPC/subscription client. It
// delivers raw account events by push and answers point queries.
type Ledger interface {
	// Subscribe begins streaming account events for the given address.
	// The returned channel is closed when ctx is canceled or the
	// subscription is canceled via its handle.
	Subscribe(ctx context.Context, address string) (<-chan AccountEvent, Subscription, error)

	// GetBalance returns the current native balance of the address.
	GetBalance(ctx context.Context, address string) (float64, error)

	// GetTokenMetadata resolves name, symbol, and price for a token mint.
	GetTokenMetadata(ctx context.Context, mint string) (TokenMetadata, error)

	// GetRecentSignature returns the most recent transaction signature for
	// the address, or an empty string if the address has no history.
	GetRecentSignature(ctx context.Context, address string) (string, error)
}
