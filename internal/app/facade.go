package app

import (
	"context"
	"time"

	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/usecase"
)

// ProcurementFacade aggregates the ledger operations the conversation
// layer and HTTP surface work against.
type ProcurementFacade struct {
	ledger *usecase.LedgerUseCase
}

// NewProcurementFacade constructs ProcurementFacade.
func NewProcurementFacade(ledger *usecase.LedgerUseCase) *ProcurementFacade {
	return &ProcurementFacade{ledger: ledger}
}

// Submit appends a completed draft and returns the assigned order number.
func (f *ProcurementFacade) Submit(ctx context.Context, draft model.Draft, name string, identity model.Identity) (string, error) {
	return f.ledger.Append(ctx, draft, name, identity)
}

// Pending returns the identity's open requests in ledger order.
func (f *ProcurementFacade) Pending(ctx context.Context, identity model.Identity) ([]model.Request, error) {
	return f.ledger.ListPending(ctx, identity)
}

// CancelRequest marks the given ledger row cancelled.
func (f *ProcurementFacade) CancelRequest(ctx context.Context, row int) error {
	return f.ledger.Cancel(ctx, row)
}

// Search runs a free-text query over the ledger.
func (f *ProcurementFacade) Search(ctx context.Context, term string) ([]model.Request, error) {
	return f.ledger.Search(ctx, term)
}

// WeeklyStats aggregates the current week.
func (f *ProcurementFacade) WeeklyStats(ctx context.Context) (model.WeeklyStats, error) {
	return f.ledger.WeeklyStats(ctx, time.Now())
}
