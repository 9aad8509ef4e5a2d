// Package solana implements the watchengine.Ledger interface for Solana
// nodes. Point queries go through a JSON-RPC client; push subscriptions use
// the node's websocket endpoint.
package solana

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tokenwatch/internal/watchengine"
)

// lamportsPerSol converts the native balance unit into SOL.
const lamportsPerSol = 1e9

// ErrAssetNotFound is returned when the node has no metadata for a mint.
var ErrAssetNotFound = errors.New("asset not found")

// client implements watchengine.Ledger and balancewatch.TokenMetadataResolver
// against a Solana node.
type client struct {
	conn       jsonrpc.Client // JSON-RPC client for point queries
	wsEndpoint string         // websocket endpoint for push subscriptions
}

// Compile-time interface assertions.
var (
	_ watchengine.Ledger                 = (*client)(nil)
	_ balancewatch.TokenMetadataResolver = (*client)(nil)
)

// NewClient creates a Solana ledger client. conn is used for point queries;
// wsEndpoint is the node's websocket URL used for subscriptions.
func NewClient(conn jsonrpc.Client, wsEndpoint string) *client {
	return &client{
		conn:       conn,
		wsEndpoint: wsEndpoint,
	}
}

// balanceResponse is the result payload of the getBalance RPC call.
type balanceResponse struct {
	Value uint64 `json:"value"` // balance in lamports
}

// GetBalance implements watchengine.Ledger.
func (c *client) GetBalance(ctx context.Context, address string) (float64, error) {
	data, err := c.conn.Fetch(ctx, "getBalance", address)
	if err != nil {
		return 0, err
	}

	var res balanceResponse
	if err := json.Unmarshal(data, &res); err != nil {
		return 0, err
	}

	return float64(res.Value) / lamportsPerSol, nil
}

// signatureInfo is one entry of the getSignaturesForAddress result.
type signatureInfo struct {
	Signature string `json:"signature"`
	Slot      uint64 `json:"slot"`
	Err       any    `json:"err"`
}

// GetRecentSignature implements watchengine.Ledger. It returns an empty
// string when the address has no transaction history.
func (c *client) GetRecentSignature(ctx context.Context, address string) (string, error) {
	data, err := c.conn.Fetch(ctx, "getSignaturesForAddress", address, map[string]any{"limit": 1})
	if err != nil {
		return "", err
	}

	var signatures []signatureInfo
	if err := json.Unmarshal(data, &signatures); err != nil {
		return "", err
	}

	if len(signatures) == 0 {
		return "", nil
	}
	return signatures[0].Signature, nil
}

// assetResponse is the subset of the getAsset (DAS) result this client reads.
type assetResponse struct {
	ID      string `json:"id"`
	Content struct {
		Metadata struct {
			Name   string `json:"name"`
			Symbol string `json:"symbol"`
		} `json:"metadata"`
	} `json:"content"`
	TokenInfo struct {
		PriceInfo struct {
			PricePerToken float64 `json:"price_per_token"`
			Currency      string  `json:"currency"`
		} `json:"price_info"`
	} `json:"token_info"`
}

// getAsset fetches mint metadata through the node's DAS API.
func (c *client) getAsset(ctx context.Context, mint string) (assetResponse, error) {
	data, err := c.conn.Fetch(ctx, "getAsset", map[string]any{"id": mint})
	if err != nil {
		return assetResponse{}, err
	}

	var asset assetResponse
	if err := json.Unmarshal(data, &asset); err != nil {
		return assetResponse{}, err
	}

	if asset.ID == "" {
		return assetResponse{}, ErrAssetNotFound
	}
	return asset, nil
}

// GetTokenMetadata implements watchengine.Ledger.
func (c *client) GetTokenMetadata(ctx context.Context, mint string) (watchengine.TokenMetadata, error) {
	asset, err := c.getAsset(ctx, mint)
	if err != nil {
		return watchengine.TokenMetadata{}, err
	}

	return watchengine.TokenMetadata{
		Name:     asset.Content.Metadata.Name,
		Symbol:   asset.Content.Metadata.Symbol,
		PriceUSD: asset.TokenInfo.PriceInfo.PricePerToken,
	}, nil
}

// ResolveToken implements balancewatch.TokenMetadataResolver.
func (c *client) ResolveToken(ctx context.Context, mint string) (balancewatch.TokenMetadata, error) {
	asset, err := c.getAsset(ctx, mint)
	if err != nil {
		return balancewatch.TokenMetadata{}, err
	}

	return balancewatch.TokenMetadata{
		Name:     asset.Content.Metadata.Name,
		Symbol:   asset.Content.Metadata.Symbol,
		PriceUSD: asset.TokenInfo.PriceInfo.PricePerToken,
	}, nil
}
