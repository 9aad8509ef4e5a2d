// Package config loads and validates the service configuration from the
// environment.
package config

import (
	"time"

	"github.com/gabapcia/tokenwatch/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// envPrefix namespaces every environment variable read by Load.
const envPrefix = "tokenwatch"

// Config is the full service configuration. Missing required values are a
// fatal startup error: the engine must never enter tracking with an
// incomplete configuration.
type Config struct {
	LogLevel         string `envconfig:"LOG_LEVEL" default:"info"`
	TelemetryEnabled bool   `envconfig:"TELEMETRY_ENABLED" default:"false"`

	RootWalletOne string `envconfig:"ROOT_WALLET_1" validate:"required"`
	RootWalletTwo string `envconfig:"ROOT_WALLET_2" validate:"required"`

	DiscoveryCapacity int           `envconfig:"DISCOVERY_CAPACITY" default:"1000"`
	DebounceWindow    time.Duration `envconfig:"DEBOUNCE_WINDOW" default:"8s"`
	MaxNormalSwing    float64       `envconfig:"MAX_NORMAL_SWING" default:"0"`

	SolanaRPCEndpoint string `envconfig:"SOLANA_RPC_ENDPOINT" validate:"required"`
	SolanaWSEndpoint  string `envconfig:"SOLANA_WS_ENDPOINT" validate:"required"`

	TelegramToken  string `envconfig:"TELEGRAM_TOKEN" validate:"required"`
	TelegramChatID string `envconfig:"TELEGRAM_CHAT_ID" validate:"required"`
	TelegramGroup  bool   `envconfig:"TELEGRAM_CHAT_IS_GROUP" default:"false"`

	GlobalMessageWindow time.Duration `envconfig:"GLOBAL_MESSAGE_WINDOW" default:"1s"`
	GlobalMessageCap    int           `envconfig:"GLOBAL_MESSAGE_CAP" default:"30" validate:"min=1"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisUsername string `envconfig:"REDIS_USERNAME"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
