package telegram

import (
	"context"
	"log/slog"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/polkiloo/procurebot/internal/chat"
)

// Handler consumes one inbound chat event to completion.
type Handler interface {
	HandleEvent(ctx context.Context, ev chat.Event)
}

const updateTimeout = 30 // long-poll timeout, seconds

// Poller reads updates from the Bot API long-poll channel and feeds them
// to the per-identity dispatcher, so a slow ledger call never stalls
// other users' conversations while each user's events stay in order.
type Poller struct {
	bot    *Bot
	events *Dispatcher
	logger *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewPoller constructs the long-poll receiver.
func NewPoller(bot *Bot, events *Dispatcher, logger *slog.Logger) *Poller {
	return &Poller{bot: bot, events: events, logger: logger}
}

// Start begins receiving updates.
func (p *Poller) Start(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel

	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = updateTimeout
	updates := p.bot.api.GetUpdatesChan(cfg)

	p.wg.Add(1)
	go p.loop(runCtx, updates)
}

// Stop drains in-flight handlers and stops polling.
func (p *Poller) Stop() {
	p.mu.Lock()
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
		p.bot.api.StopReceivingUpdates()
	}
	p.mu.Unlock()

	p.wg.Wait()
	p.events.Wait()
}

func (p *Poller) loop(ctx context.Context, updates tgbotapi.UpdatesChannel) {
	defer p.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			p.dispatch(ctx, update)
		}
	}
}

func (p *Poller) dispatch(ctx context.Context, update tgbotapi.Update) {
	if cb := update.CallbackQuery; cb != nil {
		p.bot.ackCallback(cb.ID)
	}

	ev, ok := eventFromUpdate(update)
	if !ok {
		return
	}
	p.events.Dispatch(ctx, ev)
}
