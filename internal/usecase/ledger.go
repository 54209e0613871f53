package usecase

import (
	"context"
	"strings"
	"time"

	domainErrors "github.com/polkiloo/procurebot/internal/domain/errors"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/domain/repository"
)

// searchLimit caps search results, first matches in ledger order win.
const searchLimit = 10

// LedgerUseCase implements the request lifecycle over the tabular ledger.
type LedgerUseCase struct {
	store       repository.RowStore
	counter     repository.OrderCounter
	costCenters map[string]struct{}
	now         func() time.Time
}

// NewLedgerUseCase constructs LedgerUseCase with the configured cost center set.
func NewLedgerUseCase(store repository.RowStore, counter repository.OrderCounter, costCenters []string) *LedgerUseCase {
	set := make(map[string]struct{}, len(costCenters))
	for _, cc := range costCenters {
		set[cc] = struct{}{}
	}
	return &LedgerUseCase{
		store:       store,
		counter:     counter,
		costCenters: set,
		now:         time.Now,
	}
}

// Append validates the draft, reserves an order number and writes one full
// ledger row. The number is assigned exactly once, at append time.
func (u *LedgerUseCase) Append(ctx context.Context, draft model.Draft, name string, identity model.Identity) (string, error) {
	switch draft.Urgency {
	case string(model.UrgencyUrgent), string(model.UrgencyNormal):
	default:
		return "", domainErrors.ErrInvalidUrgency
	}
	if _, ok := u.costCenters[draft.CostCenter]; !ok {
		return "", domainErrors.ErrInvalidCostCenter
	}

	n, err := u.counter.Next(ctx)
	if err != nil {
		return "", err
	}

	created := u.now()
	req := model.Request{
		OrderNumber:   model.FormatOrderNumber(n),
		CreatedAtRaw:  created.Format(model.CreatedAtLayout),
		RequesterName: name,
		Identity:      identity,
		Article:       draft.Article,
		Quantity:      draft.Quantity,
		Urgency:       draft.Urgency,
		CostCenter:    draft.CostCenter,
		Status:        model.StatusPending,
	}

	if err := u.store.Append(ctx, req.LedgerRow()); err != nil {
		return "", err
	}
	return req.OrderNumber, nil
}

// ListPending returns the identity's requests with empty status in ledger
// order, each carrying its physical row for later mutation.
func (u *LedgerUseCase) ListPending(ctx context.Context, identity model.Identity) ([]model.Request, error) {
	requests, err := u.dataRows(ctx)
	if err != nil {
		return nil, err
	}

	var pending []model.Request
	for _, req := range requests {
		if req.Identity == identity && req.Pending() {
			pending = append(pending, req)
		}
	}
	return pending, nil
}

// Cancel marks the row cancelled and stamps fulfilled_at. Ownership is the
// caller's concern: rows must come from ListPending for the right identity.
func (u *LedgerUseCase) Cancel(ctx context.Context, row int) error {
	if err := u.store.UpdateCell(ctx, row, model.ColStatus, model.StatusCancelled); err != nil {
		return err
	}
	return u.store.UpdateCell(ctx, row, model.ColFulfilledAt, u.now().Format(model.FulfilledAtLayout))
}

// Search matches term case-insensitively against article, requester name
// and cost center, returning at most searchLimit rows in ledger order.
func (u *LedgerUseCase) Search(ctx context.Context, term string) ([]model.Request, error) {
	requests, err := u.dataRows(ctx)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(term)
	var results []model.Request
	for _, req := range requests {
		if strings.Contains(strings.ToLower(req.Article), needle) ||
			strings.Contains(strings.ToLower(req.RequesterName), needle) ||
			strings.Contains(strings.ToLower(req.CostCenter), needle) {
			results = append(results, req)
			if len(results) == searchLimit {
				break
			}
		}
	}
	return results, nil
}

// WeeklyStats aggregates requests created between the most recent Monday
// 00:00 and now. Rows with unparsable timestamps are skipped silently.
func (u *LedgerUseCase) WeeklyStats(ctx context.Context, now time.Time) (model.WeeklyStats, error) {
	requests, err := u.dataRows(ctx)
	if err != nil {
		return model.WeeklyStats{}, err
	}

	start := weekStart(now)
	stats := model.WeeklyStats{ByCostCenter: map[string]int{}}
	for _, req := range requests {
		if req.CreatedAt.IsZero() {
			continue
		}
		if req.CreatedAt.Before(start) || req.CreatedAt.After(now) {
			continue
		}

		stats.Total++
		switch {
		case req.Pending():
			stats.Pending++
		case req.Cancelled():
			stats.Cancelled++
		default:
			stats.Fulfilled++
		}
		stats.ByCostCenter[req.CostCenter]++
	}
	return stats, nil
}

func (u *LedgerUseCase) dataRows(ctx context.Context) ([]model.Request, error) {
	rows, err := u.store.ReadAll(ctx)
	if err != nil {
		return nil, err
	}

	var requests []model.Request
	for i, row := range rows {
		pos := i + 1
		if pos < model.FirstDataRow {
			continue
		}
		requests = append(requests, model.RequestFromRow(pos, row))
	}
	return requests, nil
}

// weekStart returns the most recent Monday 00:00 before now.
func weekStart(now time.Time) time.Time {
	daysSinceMonday := (int(now.Weekday()) + 6) % 7
	monday := now.AddDate(0, 0, -daysSinceMonday)
	return time.Date(monday.Year(), monday.Month(), monday.Day(), 0, 0, 0, 0, monday.Location())
}
