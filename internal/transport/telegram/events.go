package telegram

import (
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/polkiloo/procurebot/internal/chat"
	"github.com/polkiloo/procurebot/internal/domain/model"
)

func identityOf(id int64) model.Identity {
	return model.Identity(strconv.FormatInt(id, 10))
}

// senderName joins first and last name, falling back to the username
// for accounts without a display name.
func senderName(user *tgbotapi.User) string {
	if user == nil {
		return ""
	}
	if name := strings.TrimSpace(user.FirstName + " " + user.LastName); name != "" {
		return name
	}
	return user.UserName
}

// eventFromUpdate maps one Telegram update to a chat event. The second
// return is false for update kinds the engine has no use for.
func eventFromUpdate(u tgbotapi.Update) (chat.Event, bool) {
	if cb := u.CallbackQuery; cb != nil && cb.Message != nil {
		return chat.SelectionMessage{
			Identity: identityOf(cb.Message.Chat.ID),
			Sender:   senderName(cb.From),
			Token:    cb.Data,
		}, true
	}

	msg := u.Message
	if msg == nil {
		return nil, false
	}
	identity := identityOf(msg.Chat.ID)
	sender := senderName(msg.From)

	switch {
	case msg.IsCommand():
		return chat.CommandMessage{
			Identity: identity,
			Sender:   sender,
			Name:     msg.Command(),
			Args:     strings.Fields(msg.CommandArguments()),
		}, true
	case len(msg.Photo) > 0:
		// Telegram lists the same photo in several resolutions, the
		// largest last.
		return chat.PhotoMessage{
			Identity:     identity,
			Sender:       sender,
			AttachmentID: msg.Photo[len(msg.Photo)-1].FileID,
		}, true
	case msg.Text != "":
		return chat.TextMessage{
			Identity: identity,
			Sender:   sender,
			Text:     msg.Text,
		}, true
	}
	return nil, false
}
