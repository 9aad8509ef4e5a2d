package watchengine

import "context"

// ConfirmedTokenAlert describes a token mint that both root wallets have
// independently touched, making it notification-worthy.
type ConfirmedTokenAlert struct {
	Mint     string  // token mint address
	Name     string  // token name from metadata
	Symbol   string  // ticker symbol from metadata
	PriceUSD float64 // current market price in USD
}

// AlertNotifier delivers confirmed-token alerts. Confirmations are rare
// alert-worthy events, so they are dispatched directly rather than batched.
type AlertNotifier interface {
	// NotifyConfirmedToken sends one alert for a newly confirmed token.
	NotifyConfirmedToken(ctx context.Context, alert ConfirmedTokenAlert) error
}
