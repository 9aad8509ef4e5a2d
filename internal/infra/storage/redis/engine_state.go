package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/gabapcia/tokenwatch/internal/watchengine"

	redis "github.com/redis/go-redis/v9"
)

// engineStateKey is the Redis key holding the persisted engine state record.
const engineStateKey = "engine:state"

// engineStateRecord is the JSON shape stored under engineStateKey.
type engineStateRecord struct {
	Tracking    bool      `json:"tracking"`
	LastUpdated time.Time `json:"last_updated"`
}

// SaveEngineState implements the watchengine.StateStorage interface. Calling
// it repeatedly overwrites the previous record.
func (c *client) SaveEngineState(ctx context.Context, state watchengine.EngineState) error {
	record := engineStateRecord{
		Tracking:    state.Tracking,
		LastUpdated: state.LastUpdated,
	}

	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	return c.conn.Set(ctx, engineStateKey, data, 0).Err()
}

// LoadEngineState implements the watchengine.StateStorage interface. It
// returns watchengine.ErrNoStateFound when nothing has been persisted yet.
func (c *client) LoadEngineState(ctx context.Context) (watchengine.EngineState, error) {
	data, err := c.conn.Get(ctx, engineStateKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return watchengine.EngineState{}, watchengine.ErrNoStateFound
		}
		return watchengine.EngineState{}, err
	}

	var record engineStateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return watchengine.EngineState{}, err
	}

	return watchengine.EngineState{
		Tracking:    record.Tracking,
		LastUpdated: record.LastUpdated,
	}, nil
}

// Compile-time assertion that *client satisfies watchengine.StateStorage.
var _ watchengine.StateStorage = (*client)(nil)
