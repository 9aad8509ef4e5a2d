package watchengine

import (
	"context"
	"errors"
	"time"
)

// ErrNoStateFound is returned by LoadEngineState when no engine state has
// been persisted yet.
var ErrNoStateFound = errors.New("no engine state found")

// EngineState is the only engine state that survives a process restart. It is
// loaded once at startup (to decide whether to resume tracking) and written
// on every start and stop.
type EngineState struct {
	Tracking    bool      // whether the engine was tracking when last persisted
	LastUpdated time.Time // when the record was written
}

// StateStorage persists and retrieves the engine's tracking state.
type StateStorage interface {
	// SaveEngineState overwrites the persisted engine state.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	SaveEngineState(ctx context.Context, state EngineState) error

	// LoadEngineState returns the persisted engine state, or ErrNoStateFound
	// if nothing has been saved yet.
	//
	// ctx controls cancellation and deadlines for any underlying I/O.
	LoadEngineState(ctx context.Context) (EngineState, error)
}
