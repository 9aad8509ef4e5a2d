package main

import (
	"context"

	"github.com/gabapcia/tokenwatch/internal/balancewatch"
	"github.com/gabapcia/tokenwatch/internal/config"
	"github.com/gabapcia/tokenwatch/internal/correlation"
	"github.com/gabapcia/tokenwatch/internal/discovery"
	"github.com/gabapcia/tokenwatch/internal/dispatch"
	"github.com/gabapcia/tokenwatch/internal/handlers/cli"
	"github.com/gabapcia/tokenwatch/internal/handlers/command"
	"github.com/gabapcia/tokenwatch/internal/infra/ledger/solana"
	"github.com/gabapcia/tokenwatch/internal/infra/messaging/telegram"
	"github.com/gabapcia/tokenwatch/internal/infra/storage/redis"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/pkg/resilience/ratebudget"
	"github.com/gabapcia/tokenwatch/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/tokenwatch/internal/pkg/transport/http"
	"github.com/gabapcia/tokenwatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tokenwatch/internal/watchengine"
)

const serviceName = "tokenwatch"

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	if cfg.TelemetryEnabled {
		telemetryShutdown, err := telemetry.Init(ctx, serviceName)
		if err != nil {
			panic(err)
		}
		defer telemetryShutdown(ctx)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		panic(err)
	}

	storage, err := redis.NewClient(ctx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB)
	if err != nil {
		logger.Fatal(ctx, "failed to connect to redis", "error", err)
	}
	defer storage.Close()

	rpcClient := jsonrpc.NewClient(
		transporthttp.NewClient(transporthttp.WithRequestLogging()).StandardClient(),
		cfg.SolanaRPCEndpoint,
	)
	ledger := solana.NewClient(rpcClient, cfg.SolanaWSEndpoint)

	// Throttle retries are owned by the dispatcher, so the send client must
	// not retry on its own.
	messenger := telegram.NewClient(
		transporthttp.NewClient(transporthttp.WithRetryMax(0)),
		cfg.TelegramToken,
	)

	budget := ratebudget.New(ratebudget.WithGlobalLimits(cfg.GlobalMessageWindow, cfg.GlobalMessageCap))
	// The ledger stream and the command poll loop track their transport
	// backoff independently; a healthy stream must not reset the poll
	// loop's error counter.
	streamBudget := ratebudget.New()
	dispatcher := dispatch.New(messenger, budget)
	notifier := dispatch.NewChannelNotifier(dispatcher, cfg.TelegramChatID, cfg.TelegramGroup)

	roots := [2]watchengine.RootWallet{
		{ID: 1, Address: cfg.RootWalletOne},
		{ID: 2, Address: cfg.RootWalletTwo},
	}

	store := discovery.NewStore(discovery.WithCapacity(cfg.DiscoveryCapacity))
	machine := correlation.NewMachine(cfg.RootWalletOne, cfg.RootWalletTwo)
	batcher := balancewatch.New(
		map[balancewatch.RootID]string{
			balancewatch.RootID(roots[0].ID): roots[0].Address,
			balancewatch.RootID(roots[1].ID): roots[1].Address,
		},
		ledger,
		notifier,
		balancewatch.WithWindow(cfg.DebounceWindow),
		balancewatch.WithMaxNormalSwing(cfg.MaxNormalSwing),
	)

	engine := watchengine.New(roots, ledger, storage, notifier, store, machine, batcher, streamBudget)
	commands := command.New(engine, messenger, dispatcher, budget)

	if err := cli.Run(ctx, engine, commands, storage); err != nil {
		logger.Fatal(ctx, "service terminated with error", "error", err)
	}
}
