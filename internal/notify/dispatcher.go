// Package notify delivers best-effort admin notifications off the hot
// path of the conversation flows.
package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/report"
)

type job struct {
	text         string
	attachmentID string
	caption      string
}

// Dispatcher fans admin notifications out over a small worker pool.
// Enqueueing never blocks and failures are logged, never surfaced: a
// broken admin channel must not affect any user-facing operation.
type Dispatcher struct {
	sink    chat.Sink
	admin   model.Identity
	workers int
	logger  *slog.Logger

	jobs   chan job
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewDispatcher constructs the notification pool. An empty admin identity
// disables delivery entirely.
func NewDispatcher(sink chat.Sink, admin model.Identity, workers, queueSize int, logger *slog.Logger) *Dispatcher {
	if workers <= 0 {
		workers = 1
	}
	if queueSize <= 0 {
		queueSize = 1
	}
	return &Dispatcher{
		sink:    sink,
		admin:   admin,
		workers: workers,
		logger:  logger,
		jobs:    make(chan job, queueSize),
	}
}

// Start launches the delivery workers.
func (d *Dispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop waits for in-flight deliveries to finish. Queued jobs that no
// worker picked up before cancellation are dropped.
func (d *Dispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

// NewRequest notifies the admin about a freshly submitted request.
func (d *Dispatcher) NewRequest(orderNumber, requester string, draft model.Draft) {
	j := job{text: report.AdminNewRequest(orderNumber, requester, draft)}
	if draft.AttachmentID != "" {
		j.attachmentID = draft.AttachmentID
		j.caption = report.AttachmentCaption(orderNumber)
	}
	d.enqueue(j)
}

// Cancelled notifies the admin about a cancellation.
func (d *Dispatcher) Cancelled(req model.Request, by string) {
	d.enqueue(job{text: report.AdminCancelled(req, by)})
}

func (d *Dispatcher) enqueue(j job) {
	if d.admin == "" {
		return
	}
	select {
	case d.jobs <- j:
	default:
		d.logger.Warn("notification queue full, dropping", slog.String("admin", string(d.admin)))
	}
}

func (d *Dispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-d.jobs:
			d.deliver(ctx, j)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, j job) {
	if err := d.sink.SendText(ctx, d.admin, j.text); err != nil {
		d.logger.Error("admin notification failed", slog.String("error", err.Error()))
		return
	}
	if j.attachmentID == "" {
		return
	}
	if err := d.sink.SendPhoto(ctx, d.admin, j.attachmentID, j.caption); err != nil {
		d.logger.Error("admin photo delivery failed", slog.String("error", err.Error()))
	}
}
