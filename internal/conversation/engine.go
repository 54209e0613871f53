package conversation

import (
	"context"
	"log/slog"
	"strings"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
	"github.com/polkiloo/procurebot/internal/report"
)

// Facade describes the ledger operations the engine delegates to.
type Facade interface {
	Submit(ctx context.Context, draft model.Draft, name string, identity model.Identity) (string, error)
	Pending(ctx context.Context, identity model.Identity) ([]model.Request, error)
	CancelRequest(ctx context.Context, row int) error
	Search(ctx context.Context, term string) ([]model.Request, error)
	WeeklyStats(ctx context.Context) (model.WeeklyStats, error)
}

// Notifier receives best-effort admin notifications. Implementations must
// not block and must never fail the calling flow.
type Notifier interface {
	NewRequest(orderNumber, requester string, draft model.Draft)
	Cancelled(req model.Request, by string)
}

// Engine routes inbound chat events through the per-identity state
// machines and the command surface.
type Engine struct {
	facade      Facade
	sink        chat.Sink
	notifier    Notifier
	sessions    *SessionStore
	costCenters []string
	logger      *slog.Logger
}

// NewEngine constructs the conversation engine.
func NewEngine(facade Facade, sink chat.Sink, notifier Notifier, costCenters []string, logger *slog.Logger) *Engine {
	return &Engine{
		facade:      facade,
		sink:        sink,
		notifier:    notifier,
		sessions:    NewSessionStore(),
		costCenters: costCenters,
		logger:      logger,
	}
}

// HandleEvent processes one inbound event to completion. The transport
// runs it on its own goroutine per update.
func (e *Engine) HandleEvent(ctx context.Context, ev chat.Event) {
	switch msg := ev.(type) {
	case chat.CommandMessage:
		e.handleCommand(ctx, msg)
	case chat.TextMessage:
		e.handleText(ctx, msg)
	case chat.PhotoMessage:
		e.handlePhoto(ctx, msg)
	case chat.SelectionMessage:
		e.handleSelection(ctx, msg)
	default:
		e.logger.Warn("unknown event type", slog.String("identity", string(ev.EventIdentity())))
	}
}

func (e *Engine) handleCommand(ctx context.Context, msg chat.CommandMessage) {
	switch msg.Name {
	case "start":
		e.startOrderFlow(ctx, msg.Identity, report.Greeting(msg.Sender))
	case "meine_bestellungen", "bestellungen":
		e.showPending(ctx, msg.Identity)
	case "stornieren":
		e.startCancelFlow(ctx, msg)
	case "suche":
		e.search(ctx, msg)
	case "statistik":
		e.showStats(ctx, msg.Identity)
	case "abbrechen", "cancel":
		e.abort(ctx, msg.Identity)
	case "weiter", "skip":
		e.skipAttachment(ctx, msg)
	case "meine_id":
		e.reply(ctx, msg.Identity, report.MyID(msg.Identity))
	case "hilfe", "help":
		e.reply(ctx, msg.Identity, report.Help())
	default:
		e.logger.Debug("unknown command", slog.String("command", msg.Name))
	}
}

func (e *Engine) handleText(ctx context.Context, msg chat.TextMessage) {
	session, ok := e.sessions.Get(msg.Identity)
	if !ok || session.Flow != FlowOrder {
		return
	}
	e.advanceOrderFlow(ctx, msg, session)
}

func (e *Engine) handlePhoto(ctx context.Context, msg chat.PhotoMessage) {
	session, ok := e.sessions.Get(msg.Identity)
	if !ok || session.Flow != FlowOrder || session.Stage != StageAttachment {
		return
	}

	session.Draft.AttachmentID = msg.AttachmentID
	e.sessions.Put(msg.Identity, session)
	e.reply(ctx, msg.Identity, report.PhotoReceived())
	e.showConfirmation(ctx, msg.Identity, session)
}

func (e *Engine) handleSelection(ctx context.Context, msg chat.SelectionMessage) {
	session, ok := e.sessions.Get(msg.Identity)
	if !ok {
		e.logger.Debug("selection without active flow", slog.String("token", msg.Token))
		return
	}

	switch session.Flow {
	case FlowOrder:
		e.selectionInOrderFlow(ctx, msg, session)
	case FlowCancel:
		e.selectionInCancelFlow(ctx, msg, session)
	}
}

// abort clears any active flow, the global fallback of both machines.
func (e *Engine) abort(ctx context.Context, identity model.Identity) {
	e.sessions.Delete(identity)
	e.reply(ctx, identity, report.Aborted())
}

func (e *Engine) showPending(ctx context.Context, identity model.Identity) {
	pending, err := e.facade.Pending(ctx, identity)
	if err != nil {
		e.logger.Error("list pending failed", slog.String("error", err.Error()))
		e.reply(ctx, identity, report.ListFailed())
		return
	}
	if len(pending) == 0 {
		e.reply(ctx, identity, report.NoPending())
		return
	}
	e.reply(ctx, identity, report.PendingList(pending))
}

func (e *Engine) search(ctx context.Context, msg chat.CommandMessage) {
	if len(msg.Args) == 0 {
		e.reply(ctx, msg.Identity, report.SearchUsage())
		return
	}

	term := strings.Join(msg.Args, " ")
	results, err := e.facade.Search(ctx, term)
	if err != nil {
		e.logger.Error("search failed", slog.String("error", err.Error()))
		e.reply(ctx, msg.Identity, report.SearchFailed())
		return
	}
	if len(results) == 0 {
		e.reply(ctx, msg.Identity, report.NoSearchResults(term))
		return
	}
	e.reply(ctx, msg.Identity, report.SearchResults(term, results))
}

func (e *Engine) showStats(ctx context.Context, identity model.Identity) {
	stats, err := e.facade.WeeklyStats(ctx)
	if err != nil {
		e.logger.Error("weekly stats failed", slog.String("error", err.Error()))
		e.reply(ctx, identity, report.StatsFailed())
		return
	}
	e.reply(ctx, identity, report.Stats(stats))
}

func (e *Engine) reply(ctx context.Context, identity model.Identity, text string) {
	if err := e.sink.SendText(ctx, identity, text); err != nil {
		e.logger.Error("send failed", slog.String("identity", string(identity)), slog.String("error", err.Error()))
	}
}

func (e *Engine) offer(ctx context.Context, identity model.Identity, prompt string, choices []chat.Choice) {
	if err := e.sink.OfferChoices(ctx, identity, prompt, choices); err != nil {
		e.logger.Error("offer failed", slog.String("identity", string(identity)), slog.String("error", err.Error()))
	}
}
