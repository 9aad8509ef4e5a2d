package solana

import (
	"context"
	"sync"

	"github.com/gabapcia/tokenwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/tokenwatch/internal/watchengine"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// eventChannelBufferSize bounds the in-flight events per subscription. When
// the buffer is full, delivery blocks, which naturally paces the reader
// against a slow consumer.
const eventChannelBufferSize = 64

// subscription is the cancel handle returned by Subscribe. Its teardown
// behavior is fixed at creation: cancel the subscription context, which
// closes the websocket reader and the event channel.
type subscription struct {
	cancel context.CancelFunc
	once   sync.Once
}

// Cancel implements watchengine.Subscription.
func (s *subscription) Cancel() {
	s.once.Do(s.cancel)
}

// connGuard tracks the live websocket connection across redials so that
// cancellation always closes the connection the reader is blocked on.
type connGuard struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	closed bool
}

// replace installs the redialed connection and closes the previous one. When
// the guard was already closed by cancellation, the new connection is closed
// immediately so the blocked reader unblocks and observes the canceled
// context.
func (g *connGuard) replace(next *websocket.Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.conn != nil {
		g.conn.Close()
	}
	g.conn = next

	if g.closed {
		next.Close()
	}
}

// close closes the current connection and marks the guard closed so any
// connection installed afterwards is closed on arrival.
func (g *connGuard) close() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.closed = true
	if g.conn != nil {
		g.conn.Close()
	}
}

// logsSubscribeRequest is the websocket payload that opens a log stream for
// every transaction mentioning the address.
func logsSubscribeRequest(address string) map[string]any {
	return map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  "logsSubscribe",
		"params": []any{
			map[string]any{"mentions": []string{address}},
			map[string]any{"commitment": "confirmed"},
		},
	}
}

// logsNotification is the websocket message shape for log events. Messages
// with a different method (e.g. the subscription ack) have Method empty or
// different and are skipped.
type logsNotification struct {
	Method string `json:"method"`
	Params struct {
		Result struct {
			Value struct {
				Signature string `json:"signature"`
				Err       any    `json:"err"`
			} `json:"value"`
		} `json:"result"`
	} `json:"params"`
}

// Subscribe implements watchengine.Ledger. The initial websocket dial must
// succeed; later connection failures are surfaced on the event channel and
// the stream redials transparently.
func (c *client) Subscribe(ctx context.Context, address string) (<-chan watchengine.AccountEvent, watchengine.Subscription, error) {
	subCtx, cancel := context.WithCancel(ctx)

	conn, err := c.dialAndSubscribe(subCtx, address)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	eventsCh := make(chan watchengine.AccountEvent, eventChannelBufferSize)
	go c.streamEvents(subCtx, conn, address, eventsCh)

	return eventsCh, &subscription{cancel: cancel}, nil
}

// dialAndSubscribe opens a websocket connection and sends the subscribe
// request for the address.
func (c *client) dialAndSubscribe(ctx context.Context, address string) (*websocket.Conn, error) {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, c.wsEndpoint, nil)
	if err != nil {
		return nil, err
	}

	if err := conn.WriteJSON(logsSubscribeRequest(address)); err != nil {
		conn.Close()
		return nil, err
	}

	return conn, nil
}

// streamEvents reads log notifications, hydrates each one into an
// AccountEvent via getTransaction, and forwards it. Read failures emit an
// error event and trigger a redial; the engine paces consumption of error
// events with its transport backoff, which throttles the redial loop through
// the blocking channel send.
func (c *client) streamEvents(ctx context.Context, conn *websocket.Conn, address string, eventsCh chan<- watchengine.AccountEvent) {
	defer close(eventsCh)

	guard := &connGuard{conn: conn}
	defer guard.close()

	// Unblock the blocking reader when the subscription is canceled. The
	// guard makes sure the connection closed here is the one the reader is
	// currently blocked on, even across redials.
	go func() {
		<-ctx.Done()
		guard.close()
	}()

	for {
		if ctx.Err() != nil {
			return
		}

		var msg logsNotification
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return
			}

			if !chflow.Send(ctx, eventsCh, watchengine.AccountEvent{Err: err}) {
				return
			}

			next, err := c.dialAndSubscribe(ctx, address)
			if err != nil {
				if !chflow.Send(ctx, eventsCh, watchengine.AccountEvent{Err: err}) {
					return
				}
				continue
			}

			guard.replace(next)
			conn = next
			continue
		}

		if msg.Method != "logsNotification" {
			continue
		}

		// Failed transactions carry no activity worth routing.
		if msg.Params.Result.Value.Err != nil {
			continue
		}

		event, err := c.buildAccountEvent(ctx, address, msg.Params.Result.Value.Signature)
		if err != nil {
			if !chflow.Send(ctx, eventsCh, watchengine.AccountEvent{Err: err}) {
				return
			}
			continue
		}

		if !chflow.Send(ctx, eventsCh, event) {
			return
		}
	}
}
