package dispatch

import (
	"context"
	"fmt"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/watchengine"
)

// ChannelNotifier binds the dispatcher to one configured notification
// channel. It adapts the engine's and the batcher's notification interfaces
// onto plain dispatcher sends.
type ChannelNotifier struct {
	dispatcher *Dispatcher
	recipient  string
	group      bool
}

// Compile-time assertions for the notification interfaces this adapter serves.
var (
	_ balancewatch.FlushNotifier = (*ChannelNotifier)(nil)
	_ watchengine.AlertNotifier  = (*ChannelNotifier)(nil)
)

// NewChannelNotifier creates a notifier that sends everything to the given
// recipient. group must reflect the platform's recipient kind since it
// selects the rate-budget window.
func NewChannelNotifier(dispatcher *Dispatcher, recipient string, group bool) *ChannelNotifier {
	return &ChannelNotifier{
		dispatcher: dispatcher,
		recipient:  recipient,
		group:      group,
	}
}

// NotifyBalanceUpdates implements balancewatch.FlushNotifier.
func (n *ChannelNotifier) NotifyBalanceUpdates(ctx context.Context, wallet, text string) error {
	body := fmt.Sprintf("*Wallet* `%s`\n\n%s", shortenAddress(wallet), text)

	return n.dispatcher.Send(ctx, Message{
		Recipient:      n.recipient,
		Group:          n.group,
		Text:           body,
		RichFormatting: true,
	})
}

// NotifyConfirmedToken implements watchengine.AlertNotifier.
func (n *ChannelNotifier) NotifyConfirmedToken(ctx context.Context, alert watchengine.ConfirmedTokenAlert) error {
	body := fmt.Sprintf(
		"🚨 *Token confirmed by both wallets*\n\n*%s* (%s)\nPrice: $%g\nMint: `%s`",
		alert.Symbol,
		alert.Name,
		alert.PriceUSD,
		alert.Mint,
	)

	return n.dispatcher.Send(ctx, Message{
		Recipient:      n.recipient,
		Group:          n.group,
		Text:           body,
		RichFormatting: true,
	})
}

// shortenAddress abbreviates a ledger address for display.
func shortenAddress(address string) string {
	if len(address) <= 12 {
		return address
	}
	return address[:6] + "…" + address[len(address)-4:]
}
