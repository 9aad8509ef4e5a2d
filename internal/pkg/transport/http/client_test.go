package http

import (
	"testing"
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("uses default configuration when no options are provided", func(t *testing.T) {
		client := NewClient()

		require.NotNil(t, client)
		assert.Equal(t, 5*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 1*time.Second, client.RetryWaitMin)
		assert.Equal(t, 5*time.Second, client.RetryWaitMax)
		assert.Equal(t, 2, client.RetryMax)
		assert.Nil(t, client.Logger)
	})

	t.Run("applies provided options correctly", func(t *testing.T) {
		client := NewClient(
			WithTimeout(10*time.Second),
			WithRetryWaitMin(200*time.Millisecond),
			WithRetryWaitMax(10*time.Second),
			WithRetryMax(5),
		)

		assert.Equal(t, 10*time.Second, client.HTTPClient.Timeout)
		assert.Equal(t, 200*time.Millisecond, client.RetryWaitMin)
		assert.Equal(t, 10*time.Second, client.RetryWaitMax)
		assert.Equal(t, 5, client.RetryMax)
	})

	t.Run("retries can be disabled entirely", func(t *testing.T) {
		client := NewClient(WithRetryMax(0))

		assert.Zero(t, client.RetryMax)
	})

	t.Run("request logging bridges to the service logger", func(t *testing.T) {
		require.NoError(t, logger.Init())

		client := NewClient(WithRequestLogging())

		require.IsType(t, leveledLogger{}, client.Logger)

		ll := client.Logger.(leveledLogger)
		assert.NotPanics(t, func() {
			ll.Debug("attempt", "method", "GET")
			ll.Info("attempt", "method", "GET")
			ll.Warn("attempt", "method", "GET")
			ll.Error("attempt", "method", "GET")
		})
	})
}
