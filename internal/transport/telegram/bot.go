// Package telegram adapts the Telegram Bot API to the chat contracts:
// outbound messages through chat.Sink, inbound updates as chat.Events.
package telegram

import (
	"context"
	"fmt"
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

// api is the slice of *tgbotapi.BotAPI the adapter needs.
type api interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Bot implements chat.Sink over the Telegram Bot API.
type Bot struct {
	api api
}

// NewBot wraps a connected Bot API client.
func NewBot(a api) *Bot {
	return &Bot{api: a}
}

// Dial connects to the Bot API with the given token.
func Dial(token string) (*Bot, error) {
	client, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram connect: %w", err)
	}
	return NewBot(client), nil
}

func chatID(identity model.Identity) (int64, error) {
	id, err := strconv.ParseInt(string(identity), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("malformed chat identity %q: %w", identity, err)
	}
	return id, nil
}

// SendText delivers a plain text message.
func (b *Bot) SendText(_ context.Context, identity model.Identity, text string) error {
	id, err := chatID(identity)
	if err != nil {
		return err
	}
	_, err = b.api.Send(tgbotapi.NewMessage(id, text))
	return err
}

// SendPhoto re-sends a previously uploaded photo by its file handle.
func (b *Bot) SendPhoto(_ context.Context, identity model.Identity, attachmentID, caption string) error {
	id, err := chatID(identity)
	if err != nil {
		return err
	}
	photo := tgbotapi.NewPhoto(id, tgbotapi.FileID(attachmentID))
	photo.Caption = caption
	_, err = b.api.Send(photo)
	return err
}

// OfferChoices sends a prompt with an inline keyboard, one choice per row.
func (b *Bot) OfferChoices(_ context.Context, identity model.Identity, prompt string, choices []chat.Choice) error {
	id, err := chatID(identity)
	if err != nil {
		return err
	}

	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(choices))
	for _, c := range choices {
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(c.Label, c.Token),
		))
	}

	msg := tgbotapi.NewMessage(id, prompt)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(rows...)
	_, err = b.api.Send(msg)
	return err
}

// ackCallback stops the client-side spinner after a button press.
func (b *Bot) ackCallback(callbackID string) {
	_, _ = b.api.Request(tgbotapi.NewCallback(callbackID, ""))
}
