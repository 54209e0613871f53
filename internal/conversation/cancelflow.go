package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/report"
)

// Choice tokens of the cancellation flow. The row token carries the
// ledger row so the selection maps back to a concrete request.
const (
	tokenCancelRow   = "cancel:"
	tokenCancelAbort = "cancel:abort"
)

// startCancelFlow lists the identity's pending requests and offers one
// button per request. The list is cached in the session so the later
// selection resolves against what the user actually saw.
func (e *Engine) startCancelFlow(ctx context.Context, msg chat.CommandMessage) {
	pending, err := e.facade.Pending(ctx, msg.Identity)
	if err != nil {
		e.logger.Error("cancel flow pending lookup failed", slog.String("error", err.Error()))
		e.reply(ctx, msg.Identity, report.CancelFailed())
		return
	}
	if len(pending) == 0 {
		e.sessions.Delete(msg.Identity)
		e.reply(ctx, msg.Identity, report.CancelNoPending())
		return
	}

	e.sessions.Put(msg.Identity, &Session{
		Flow:    FlowCancel,
		Stage:   StageSelecting,
		Pending: pending,
	})

	choices := make([]chat.Choice, 0, len(pending)+1)
	for _, req := range pending {
		choices = append(choices, chat.Choice{
			Label: fmt.Sprintf("%s - %s (%s)", req.OrderNumber, req.Article, req.Quantity),
			Token: tokenCancelRow + strconv.Itoa(req.Row),
		})
	}
	choices = append(choices, chat.Choice{Label: "❌ Abbrechen", Token: tokenCancelAbort})

	e.offer(ctx, msg.Identity, report.CancelPrompt(), choices)
}

func (e *Engine) selectionInCancelFlow(ctx context.Context, msg chat.SelectionMessage, session *Session) {
	if msg.Token == tokenCancelAbort {
		e.sessions.Delete(msg.Identity)
		e.reply(ctx, msg.Identity, report.CancelAborted())
		return
	}
	if !strings.HasPrefix(msg.Token, tokenCancelRow) {
		e.logger.Debug("foreign token in cancel flow", slog.String("token", msg.Token))
		return
	}

	row, err := strconv.Atoi(strings.TrimPrefix(msg.Token, tokenCancelRow))
	if err != nil {
		e.logger.Debug("malformed cancel token", slog.String("token", msg.Token))
		return
	}

	target, found := e.cachedRequest(session, row)
	if !found {
		// Stale keyboard, session already replaced or request not offered.
		e.sessions.Delete(msg.Identity)
		e.reply(ctx, msg.Identity, report.CancelFailed())
		return
	}

	e.sessions.Delete(msg.Identity)

	if err := e.facade.CancelRequest(ctx, row); err != nil {
		e.logger.Error("cancel failed",
			slog.String("order", target.OrderNumber), slog.String("error", err.Error()))
		e.reply(ctx, msg.Identity, report.CancelFailed())
		return
	}

	e.reply(ctx, msg.Identity, report.CancelConfirmed(target))
	e.notifier.Cancelled(target, msg.Sender)
}

func (e *Engine) cachedRequest(session *Session, row int) (model.Request, bool) {
	for _, r := range session.Pending {
		if r.Row == row {
			return r, true
		}
	}
	return model.Request{}, false
}
