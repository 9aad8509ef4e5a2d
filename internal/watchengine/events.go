package watchengine

import (
	"context"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/correlation"
	"github.com/gabapcia/tokenwatch/internal/discovery"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
)

// handleAccountEvents consumes the ledger event stream for one root wallet
// and routes each event. It blocks until the channel closes or ctx is
// canceled. Events for one root wallet are processed in delivery order; no
// ordering is guaranteed across the two roots.
//
// Per-event errors are contained here so one malformed event never halts the
// watch loop.
func (s *service) handleAccountEvents(ctx context.Context, root RootWallet, eventsCh <-chan AccountEvent) {
	for {
		event, ok := chflow.Receive(ctx, eventsCh)
		if !ok {
			return
		}

		if event.Err != nil {
			backoff := s.budget.ReportTransportError(event.Err)
			logger.Warn(ctx, "ledger subscription error, backing off",
				"root.id", root.ID,
				"backoff", backoff,
				"error", event.Err,
			)

			if !chflow.Wait(ctx, backoff) {
				return
			}
			continue
		}
		s.budget.ReportTransportSuccess()

		if !s.isTracking() {
			continue
		}

		s.routeEvent(ctx, root, event)
	}
}

// routeEvent applies one ledger event: counterparties feed discovery, balance
// changes on the root wallet itself feed the debounce batcher, and token
// interactions run through the correlation machine.
func (s *service) routeEvent(ctx context.Context, root RootWallet, event AccountEvent) {
	for _, address := range event.InvolvedAddresses {
		if address == root.Address {
			continue
		}
		s.discovery.RecordActivity(discovery.RootID(root.ID), address)
	}

	switch {
	case event.Balance != nil:
		// High-frequency balance churn on the root wallet goes through the
		// debounce window instead of straight to dispatch.
		s.batcher.Enqueue(ctx, balancewatch.RootID(root.ID), event.Mint, *event.Balance, event.Signature)

	case event.Mint != "":
		action := s.correlation.Observe(correlation.WalletID(root.ID), event.Mint)
		logger.Debug(ctx, "token observation",
			"root.id", root.ID,
			"token.mint", event.Mint,
			"correlation.action", action.String(),
		)

		if action == correlation.ActionConfirm {
			s.alertConfirmedToken(ctx, root, event.Mint)
		}
	}
}

// alertConfirmedToken resolves metadata for a freshly confirmed mint and
// dispatches one direct (unbatched) alert. A metadata failure skips the alert
// for this event only.
func (s *service) alertConfirmedToken(ctx context.Context, root RootWallet, mint string) {
	var meta TokenMetadata
	err := s.retry.Execute(ctx, func() error {
		var err error
		meta, err = s.ledger.GetTokenMetadata(ctx, mint)
		return err
	})
	if err != nil {
		logger.Error(ctx, "skipping confirmed-token alert: metadata lookup failed",
			"root.id", root.ID,
			"token.mint", mint,
			"error", err,
		)
		return
	}

	alert := ConfirmedTokenAlert{
		Mint:     mint,
		Name:     meta.Name,
		Symbol:   meta.Symbol,
		PriceUSD: meta.PriceUSD,
	}

	if err := s.alerts.NotifyConfirmedToken(ctx, alert); err != nil {
		logger.Error(ctx, "error dispatching confirmed-token alert",
			"token.mint", mint,
			"error", err,
		)
	}
}
