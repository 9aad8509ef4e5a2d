package config

import (
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()

	t.Setenv("TOKENWATCH_ROOT_WALLET_1", "root-wallet-one")
	t.Setenv("TOKENWATCH_ROOT_WALLET_2", "root-wallet-two")
	t.Setenv("TOKENWATCH_SOLANA_RPC_ENDPOINT", "https://rpc.example")
	t.Setenv("TOKENWATCH_SOLANA_WS_ENDPOINT", "wss://ws.example")
	t.Setenv("TOKENWATCH_TELEGRAM_TOKEN", "bot-token")
	t.Setenv("TOKENWATCH_TELEGRAM_CHAT_ID", "12345")
}

func TestLoad(t *testing.T) {
	t.Run("loads with defaults when only required values are set", func(t *testing.T) {
		setRequiredEnv(t)

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "root-wallet-one", cfg.RootWalletOne)
		assert.Equal(t, "root-wallet-two", cfg.RootWalletTwo)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.False(t, cfg.TelemetryEnabled)
		assert.Equal(t, 1000, cfg.DiscoveryCapacity)
		assert.Equal(t, 8*time.Second, cfg.DebounceWindow)
		assert.Zero(t, cfg.MaxNormalSwing)
		assert.Equal(t, time.Second, cfg.GlobalMessageWindow)
		assert.Equal(t, 30, cfg.GlobalMessageCap)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.False(t, cfg.TelegramGroup)
	})

	t.Run("overrides defaults from the environment", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKENWATCH_LOG_LEVEL", "debug")
		t.Setenv("TOKENWATCH_DISCOVERY_CAPACITY", "250")
		t.Setenv("TOKENWATCH_DEBOUNCE_WINDOW", "3s")
		t.Setenv("TOKENWATCH_TELEGRAM_CHAT_IS_GROUP", "true")
		t.Setenv("TOKENWATCH_GLOBAL_MESSAGE_CAP", "10")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, 250, cfg.DiscoveryCapacity)
		assert.Equal(t, 3*time.Second, cfg.DebounceWindow)
		assert.True(t, cfg.TelegramGroup)
		assert.Equal(t, 10, cfg.GlobalMessageCap)
	})

	t.Run("fails when a root wallet is missing", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKENWATCH_ROOT_WALLET_2", "")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})

	t.Run("fails when the global message cap is zero", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("TOKENWATCH_GLOBAL_MESSAGE_CAP", "0")

		_, err := Load()
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}
