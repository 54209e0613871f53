package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/report"
)

// Choice tokens of the order flow.
const (
	tokenUrgencyUrgent = "urg:urgent"
	tokenUrgencyNormal = "urg:normal"
	tokenCostCenter    = "cc:" // prefix, cost center name appended
	tokenSubmit        = "confirm:submit"
	tokenRestart       = "confirm:restart"
	tokenAbort         = "confirm:abort"
)

func urgencyChoices() []chat.Choice {
	return []chat.Choice{
		{Label: "🔴 Dringend", Token: tokenUrgencyUrgent},
		{Label: "🟢 Normal", Token: tokenUrgencyNormal},
	}
}

func (e *Engine) costCenterChoices() []chat.Choice {
	choices := make([]chat.Choice, 0, len(e.costCenters))
	for _, cc := range e.costCenters {
		choices = append(choices, chat.Choice{Label: cc, Token: tokenCostCenter + cc})
	}
	return choices
}

func confirmChoices() []chat.Choice {
	return []chat.Choice{
		{Label: "✅ Bestätigen & Absenden", Token: tokenSubmit},
		{Label: "✏️ Nochmal von vorne", Token: tokenRestart},
		{Label: "❌ Abbrechen", Token: tokenAbort},
	}
}

// startOrderFlow (re-)enters the article stage, replacing any active flow.
func (e *Engine) startOrderFlow(ctx context.Context, identity model.Identity, prompt string) {
	e.sessions.Put(identity, &Session{Flow: FlowOrder, Stage: StageArticle})
	e.reply(ctx, identity, prompt)
}

// advanceOrderFlow consumes one text input at the current stage.
func (e *Engine) advanceOrderFlow(ctx context.Context, msg chat.TextMessage, session *Session) {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return
	}

	switch session.Stage {
	case StageArticle:
		session.Draft.Article = text
		session.Stage = StageQuantity
		e.sessions.Put(msg.Identity, session)
		e.reply(ctx, msg.Identity, report.AskQuantity(text))

	case StageQuantity:
		session.Draft.Quantity = text
		session.Stage = StageUrgency
		e.sessions.Put(msg.Identity, session)
		e.offer(ctx, msg.Identity, report.AskUrgency(text), urgencyChoices())

	case StageUrgency:
		// Typed input instead of a button press: accept only a valid value.
		urgency, ok := parseUrgency(text)
		if !ok {
			e.offer(ctx, msg.Identity, report.AskUrgency(session.Draft.Quantity), urgencyChoices())
			return
		}
		e.setUrgency(ctx, msg.Identity, session, urgency)

	case StageCostCenter:
		cc, ok := e.matchCostCenter(text)
		if !ok {
			e.offer(ctx, msg.Identity, report.AskCostCenter(session.Draft.Urgency), e.costCenterChoices())
			return
		}
		e.setCostCenter(ctx, msg.Identity, session, cc)

	case StageAttachment:
		// Free text at the photo stage is neither a photo nor a skip.
		e.reply(ctx, msg.Identity, report.AskPhoto(session.Draft.CostCenter))
	}
}

func (e *Engine) selectionInOrderFlow(ctx context.Context, msg chat.SelectionMessage, session *Session) {
	switch {
	case session.Stage == StageUrgency && msg.Token == tokenUrgencyUrgent:
		e.setUrgency(ctx, msg.Identity, session, string(model.UrgencyUrgent))
	case session.Stage == StageUrgency && msg.Token == tokenUrgencyNormal:
		e.setUrgency(ctx, msg.Identity, session, string(model.UrgencyNormal))
	case session.Stage == StageCostCenter && strings.HasPrefix(msg.Token, tokenCostCenter):
		cc, ok := e.matchCostCenter(strings.TrimPrefix(msg.Token, tokenCostCenter))
		if !ok {
			e.offer(ctx, msg.Identity, report.AskCostCenter(session.Draft.Urgency), e.costCenterChoices())
			return
		}
		e.setCostCenter(ctx, msg.Identity, session, cc)
	case session.Stage == StageConfirm:
		e.confirmSelection(ctx, msg, session)
	default:
		e.logger.Debug("selection ignored", slog.String("token", msg.Token), slog.Int("stage", int(session.Stage)))
	}
}

func (e *Engine) setUrgency(ctx context.Context, identity model.Identity, session *Session, urgency string) {
	session.Draft.Urgency = urgency
	session.Stage = StageCostCenter
	e.sessions.Put(identity, session)
	e.offer(ctx, identity, report.AskCostCenter(urgency), e.costCenterChoices())
}

func (e *Engine) setCostCenter(ctx context.Context, identity model.Identity, session *Session, costCenter string) {
	session.Draft.CostCenter = costCenter
	session.Stage = StageAttachment
	e.sessions.Put(identity, session)
	e.reply(ctx, identity, report.AskPhoto(costCenter))
}

// skipAttachment advances past the photo stage without an attachment.
func (e *Engine) skipAttachment(ctx context.Context, msg chat.CommandMessage) {
	session, ok := e.sessions.Get(msg.Identity)
	if !ok || session.Flow != FlowOrder || session.Stage != StageAttachment {
		return
	}
	session.Draft.AttachmentID = ""
	e.showConfirmation(ctx, msg.Identity, session)
}

func (e *Engine) showConfirmation(ctx context.Context, identity model.Identity, session *Session) {
	session.Stage = StageConfirm
	e.sessions.Put(identity, session)
	e.offer(ctx, identity, report.Confirmation(session.Draft), confirmChoices())
}

func (e *Engine) confirmSelection(ctx context.Context, msg chat.SelectionMessage, session *Session) {
	switch msg.Token {
	case tokenSubmit:
		e.submit(ctx, msg, session)
	case tokenRestart:
		e.startOrderFlow(ctx, msg.Identity, report.RestartPrompt())
	case tokenAbort:
		e.abort(ctx, msg.Identity)
	}
}

// submit is the terminal transition: append to the ledger, confirm to the
// user, notify the admin. The admin notification never affects the result.
func (e *Engine) submit(ctx context.Context, msg chat.SelectionMessage, session *Session) {
	draft := session.Draft
	e.sessions.Delete(msg.Identity)

	orderNumber, err := e.facade.Submit(ctx, draft, msg.Sender, msg.Identity)
	if err != nil {
		e.logger.Error("submit failed", slog.String("identity", string(msg.Identity)), slog.String("error", err.Error()))
		e.reply(ctx, msg.Identity, report.SaveFailed())
		return
	}

	e.reply(ctx, msg.Identity, report.Submitted(orderNumber, draft))
	e.notifier.NewRequest(orderNumber, msg.Sender, draft)
}

func parseUrgency(text string) (string, bool) {
	normalized := strings.ToLower(strings.TrimSpace(strings.TrimLeft(text, "🔴🟢 ")))
	switch normalized {
	case "dringend":
		return string(model.UrgencyUrgent), true
	case "normal":
		return string(model.UrgencyNormal), true
	}
	return "", false
}

func (e *Engine) matchCostCenter(text string) (string, bool) {
	for _, cc := range e.costCenters {
		if strings.EqualFold(cc, strings.TrimSpace(text)) {
			return cc, true
		}
	}
	return "", false
}
