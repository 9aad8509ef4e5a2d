package cli

import (
	"context"
	"os"

	"github.com/gabapcia/tokenwatch/internal/handlers/command"
	"github.com/gabapcia/tokenwatch/internal/watchengine"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the tokenwatch CLI application.
//
// It registers all available commands, including:
//
//   - `run`: Starts the watch service and its command long-poll loop.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - engine: The watch engine lifecycle driven by the service.
//   - commands: The inbound command handler whose long-poll loop the service runs.
//   - stateStorage: The persisted engine state consulted to resume tracking on startup.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, engine watchengine.Service, commands *command.Handler, stateStorage watchengine.StateStorage) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tokenwatch",
		Description:           "Command-line interface for running the tokenwatch wallet correlation service.",
		Usage:                 "tokenwatch [command] [flags]",
		Commands: []*cli.Command{
			runServiceCommand(engine, commands, stateStorage),
		},
	}

	return app.Run(ctx, os.Args)
}
