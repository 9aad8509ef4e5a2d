package solana

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	jsonrpctest "github.com/gabapcia/tokenwatch/internal/pkg/transport/jsonrpc/mocks"
	"github.com/gabapcia/tokenwatch/internal/watchengine"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("returns valid solana client with jsonrpc mock", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		c := NewClient(mockConn, "wss://node.example/ws")

		require.NotNil(t, c)
		assert.Equal(t, mockConn, c.conn)
		assert.Equal(t, "wss://node.example/ws", c.wsEndpoint)

		// Compile-time interface checks
		var _ watchengine.Ledger = c
		var _ balancewatch.TokenMetadataResolver = c
	})
}

func TestClient_GetBalance(t *testing.T) {
	t.Run("converts lamports to sol", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getBalance", "wallet-1").
			Return(json.RawMessage(`{"context": {"slot": 1}, "value": 2500000000}`), nil)

		c := NewClient(mockConn, "")
		balance, err := c.GetBalance(t.Context(), "wallet-1")

		assert.NoError(t, err)
		assert.Equal(t, 2.5, balance)

		mockConn.AssertExpectations(t)
	})

	t.Run("returns error when fetch fails", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getBalance", "wallet-1").
			Return(nil, errors.New("fetch error"))

		c := NewClient(mockConn, "")
		balance, err := c.GetBalance(t.Context(), "wallet-1")

		assert.Error(t, err)
		assert.Zero(t, balance)

		mockConn.AssertExpectations(t)
	})

	t.Run("returns error on invalid response", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getBalance", "wallet-1").
			Return(json.RawMessage(`not-json`), nil)

		c := NewClient(mockConn, "")
		_, err := c.GetBalance(t.Context(), "wallet-1")

		assert.Error(t, err)
	})
}

func TestClient_GetRecentSignature(t *testing.T) {
	t.Run("returns the most recent signature", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getSignaturesForAddress", "wallet-1", map[string]any{"limit": 1}).
			Return(json.RawMessage(`[{"signature": "sig-abc", "slot": 42, "err": null}]`), nil)

		c := NewClient(mockConn, "")
		signature, err := c.GetRecentSignature(t.Context(), "wallet-1")

		assert.NoError(t, err)
		assert.Equal(t, "sig-abc", signature)

		mockConn.AssertExpectations(t)
	})

	t.Run("returns empty string when the address has no history", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getSignaturesForAddress", "wallet-1", map[string]any{"limit": 1}).
			Return(json.RawMessage(`[]`), nil)

		c := NewClient(mockConn, "")
		signature, err := c.GetRecentSignature(t.Context(), "wallet-1")

		assert.NoError(t, err)
		assert.Empty(t, signature)
	})

	t.Run("returns error when fetch fails", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getSignaturesForAddress", "wallet-1", map[string]any{"limit": 1}).
			Return(nil, errors.New("fetch error"))

		c := NewClient(mockConn, "")
		_, err := c.GetRecentSignature(t.Context(), "wallet-1")

		assert.Error(t, err)
	})
}

const assetJSON = `{
	"id": "mint-x",
	"content": {
		"metadata": {
			"name": "Token X",
			"symbol": "TKX"
		}
	},
	"token_info": {
		"price_info": {
			"price_per_token": 0.42,
			"currency": "USDC"
		}
	}
}`

func TestClient_GetTokenMetadata(t *testing.T) {
	t.Run("maps the asset response", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getAsset", map[string]any{"id": "mint-x"}).
			Return(json.RawMessage(assetJSON), nil)

		c := NewClient(mockConn, "")
		meta, err := c.GetTokenMetadata(t.Context(), "mint-x")

		assert.NoError(t, err)
		assert.Equal(t, watchengine.TokenMetadata{
			Name:     "Token X",
			Symbol:   "TKX",
			PriceUSD: 0.42,
		}, meta)

		mockConn.AssertExpectations(t)
	})

	t.Run("returns ErrAssetNotFound for unknown mints", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getAsset", map[string]any{"id": "mint-unknown"}).
			Return(json.RawMessage(`{}`), nil)

		c := NewClient(mockConn, "")
		_, err := c.GetTokenMetadata(t.Context(), "mint-unknown")

		assert.ErrorIs(t, err, ErrAssetNotFound)
	})
}

func TestClient_ResolveToken(t *testing.T) {
	t.Run("maps the asset response", func(t *testing.T) {
		mockConn := new(jsonrpctest.Client)
		mockConn.
			On("Fetch", mock.Anything, "getAsset", map[string]any{"id": "mint-x"}).
			Return(json.RawMessage(assetJSON), nil)

		c := NewClient(mockConn, "")
		meta, err := c.ResolveToken(t.Context(), "mint-x")

		assert.NoError(t, err)
		assert.Equal(t, balancewatch.TokenMetadata{
			Name:     "Token X",
			Symbol:   "TKX",
			PriceUSD: 0.42,
		}, meta)
	})
}
