package solana

import (
	"context"
	"encoding/json"

	"github.com/gabapcia/tokenwatch/internal/watchengine"
)

// tokenBalanceEntry is one pre/post token balance record of a transaction.
type tokenBalanceEntry struct {
	Mint          string `json:"mint"`
	Owner         string `json:"owner"`
	UITokenAmount struct {
		UIAmount *float64 `json:"uiAmount"`
	} `json:"uiTokenAmount"`
}

// transactionResponse is the subset of the getTransaction (jsonParsed) result
// this client reads.
type transactionResponse struct {
	Transaction struct {
		Message struct {
			AccountKeys []struct {
				Pubkey string `json:"pubkey"`
			} `json:"accountKeys"`
		} `json:"message"`
	} `json:"transaction"`
	Meta struct {
		PreTokenBalances  []tokenBalanceEntry `json:"preTokenBalances"`
		PostTokenBalances []tokenBalanceEntry `json:"postTokenBalances"`
	} `json:"meta"`
}

// getTransaction fetches the parsed transaction for a signature.
func (c *client) getTransaction(ctx context.Context, signature string) (transactionResponse, error) {
	data, err := c.conn.Fetch(ctx, "getTransaction", signature, map[string]any{
		"encoding":                       "jsonParsed",
		"maxSupportedTransactionVersion": 0,
	})
	if err != nil {
		return transactionResponse{}, err
	}

	var tx transactionResponse
	return tx, json.Unmarshal(data, &tx)
}

// buildAccountEvent maps a confirmed transaction into the engine's event
// shape for the subscribed address:
//
//   - Every account key becomes an involved address.
//   - A pre/post token balance change owned by the address becomes a
//     balance-change event carrying the post-transaction balance.
//   - Otherwise, any token balance entry marks the event as a token-contract
//     interaction with that mint.
func (c *client) buildAccountEvent(ctx context.Context, address, signature string) (watchengine.AccountEvent, error) {
	tx, err := c.getTransaction(ctx, signature)
	if err != nil {
		return watchengine.AccountEvent{}, err
	}

	event := watchengine.AccountEvent{Signature: signature}
	for _, key := range tx.Transaction.Message.AccountKeys {
		event.InvolvedAddresses = append(event.InvolvedAddresses, key.Pubkey)
	}

	preByMint := make(map[string]float64, len(tx.Meta.PreTokenBalances))
	for _, entry := range tx.Meta.PreTokenBalances {
		if entry.Owner == address && entry.UITokenAmount.UIAmount != nil {
			preByMint[entry.Mint] = *entry.UITokenAmount.UIAmount
		}
	}

	for _, entry := range tx.Meta.PostTokenBalances {
		if entry.Owner != address {
			continue
		}

		post := float64(0)
		if entry.UITokenAmount.UIAmount != nil {
			post = *entry.UITokenAmount.UIAmount
		}

		if pre, ok := preByMint[entry.Mint]; !ok || pre != post {
			event.Mint = entry.Mint
			event.Balance = &post
			return event, nil
		}
	}

	// No balance movement for the subscribed wallet itself: treat any token
	// balance entry as a token-contract interaction.
	if len(tx.Meta.PostTokenBalances) > 0 {
		event.Mint = tx.Meta.PostTokenBalances[0].Mint
	}

	return event, nil
}
