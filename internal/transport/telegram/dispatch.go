package telegram

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

// Dispatcher hands inbound events to the engine, one identity at a time.
// Events for different identities run concurrently, but a single
// identity's events are drained by one worker in arrival order, so its
// session state is never touched by two handlers at once and stage
// transitions cannot interleave.
type Dispatcher struct {
	handler Handler
	logger  *slog.Logger

	mu     sync.Mutex
	queues map[model.Identity][]chat.Event
	wg     sync.WaitGroup
}

// NewDispatcher constructs the per-identity event sequencer.
func NewDispatcher(handler Handler, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		handler: handler,
		logger:  logger,
		queues:  make(map[model.Identity][]chat.Event),
	}
}

// Dispatch enqueues the event and returns immediately. A queue entry in
// the map means a worker is draining that identity.
func (d *Dispatcher) Dispatch(ctx context.Context, ev chat.Event) {
	identity := ev.EventIdentity()

	d.mu.Lock()
	pending, active := d.queues[identity]
	d.queues[identity] = append(pending, ev)
	d.mu.Unlock()
	if active {
		return
	}

	d.wg.Add(1)
	go d.drain(ctx, identity)
}

// Wait blocks until every queued event has been handled.
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

func (d *Dispatcher) drain(ctx context.Context, identity model.Identity) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		queue := d.queues[identity]
		if len(queue) == 0 {
			delete(d.queues, identity)
			d.mu.Unlock()
			return
		}
		ev := queue[0]
		d.queues[identity] = queue[1:]
		d.mu.Unlock()

		if ctx.Err() != nil {
			continue // shutdown: drop the backlog, then release the queue
		}
		d.handle(ctx, ev)
	}
}

func (d *Dispatcher) handle(ctx context.Context, ev chat.Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("event handler panicked",
				slog.String("identity", string(ev.EventIdentity())), slog.Any("panic", r))
		}
	}()
	d.handler.HandleEvent(ctx, ev)
}
