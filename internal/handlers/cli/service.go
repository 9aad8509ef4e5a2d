package cli

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/tokenwatch/internal/handlers/command"
	"github.com/gabapcia/tokenwatch/internal/pkg/logger"
	"github.com/gabapcia/tokenwatch/internal/watchengine"

	"github.com/urfave/cli/v3"
)

// runServiceCommand returns a CLI command that runs the watch service: it
// resumes tracking when the persisted state says tracking was active, then
// serves inbound platform commands until the process is interrupted.
//
// Usage example:
//
//	tokenwatch run
//
// The process runs indefinitely until it receives an interrupt (SIGINT or SIGTERM).
func runServiceCommand(engine watchengine.Service, commands *command.Handler, stateStorage watchengine.StateStorage) *cli.Command {
	return &cli.Command{
		Name:        "run",
		Description: "Runs the wallet correlation service and its command long-poll loop.",
		Usage:       "Resumes tracking from the persisted state and serves commands. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			quit := make(chan os.Signal, 1)
			defer close(quit)

			signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

			runCtx, cancel := context.WithCancel(ctx)
			defer cancel()

			if err := resumeTracking(runCtx, engine, stateStorage); err != nil {
				return err
			}

			errCh := make(chan error, 1)
			go func() {
				errCh <- commands.Run(runCtx)
			}()

			select {
			case <-quit:
				cancel()
				<-errCh
				return nil
			case err := <-errCh:
				if err != nil && !errors.Is(err, context.Canceled) {
					return err
				}
				return nil
			}
		},
	}
}

// resumeTracking restarts the engine when the last persisted state recorded an
// active tracking session. A missing record means a fresh install and is not
// an error.
func resumeTracking(ctx context.Context, engine watchengine.Service, stateStorage watchengine.StateStorage) error {
	state, err := stateStorage.LoadEngineState(ctx)
	if err != nil {
		if errors.Is(err, watchengine.ErrNoStateFound) {
			return nil
		}
		return err
	}

	if !state.Tracking {
		return nil
	}

	logger.Info(ctx, "resuming tracking from persisted state", "state.last_updated", state.LastUpdated)
	if err := engine.Start(ctx); err != nil && !errors.Is(err, watchengine.ErrAlreadyTracking) {
		return err
	}

	return nil
}
