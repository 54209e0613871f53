package telegram

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/polkiloo/procurebot/internal/chat"
)

func commandUpdate(text string, cmdLen int) tgbotapi.Update {
	return tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 42},
		From: &tgbotapi.User{FirstName: "Max"},
		Text: text,
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: cmdLen},
		},
	}}
}

func TestEventFromUpdateCommand(t *testing.T) {
	ev, ok := eventFromUpdate(commandUpdate("/suche Drucker papier", 6))
	if !ok {
		t.Fatal("command update must produce an event")
	}
	cmd, ok := ev.(chat.CommandMessage)
	if !ok {
		t.Fatalf("event type = %T, want CommandMessage", ev)
	}
	if cmd.Name != "suche" {
		t.Fatalf("command name = %q, want suche", cmd.Name)
	}
	if len(cmd.Args) != 2 || cmd.Args[0] != "Drucker" {
		t.Fatalf("args = %v", cmd.Args)
	}
	if cmd.Identity != "42" || cmd.Sender != "Max" {
		t.Fatalf("identity/sender = %q/%q", cmd.Identity, cmd.Sender)
	}
}

func TestEventFromUpdateText(t *testing.T) {
	ev, ok := eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 7},
		From: &tgbotapi.User{UserName: "max_m"},
		Text: "Toner",
	}})
	if !ok {
		t.Fatal("text update must produce an event")
	}
	msg, ok := ev.(chat.TextMessage)
	if !ok {
		t.Fatalf("event type = %T, want TextMessage", ev)
	}
	if msg.Text != "Toner" {
		t.Fatalf("text = %q", msg.Text)
	}
	if msg.Sender != "max_m" {
		t.Fatalf("sender fallback = %q, want username", msg.Sender)
	}
}

func TestSenderNameJoinsFirstAndLast(t *testing.T) {
	cases := []struct {
		user *tgbotapi.User
		want string
	}{
		{&tgbotapi.User{FirstName: "Max", LastName: "Mustermann"}, "Max Mustermann"},
		{&tgbotapi.User{FirstName: "Max"}, "Max"},
		{&tgbotapi.User{LastName: "Mustermann"}, "Mustermann"},
		{&tgbotapi.User{UserName: "max_m"}, "max_m"},
		{nil, ""},
	}
	for _, tc := range cases {
		if got := senderName(tc.user); got != tc.want {
			t.Fatalf("senderName(%+v) = %q, want %q", tc.user, got, tc.want)
		}
	}
}

func TestEventFromUpdatePhotoPicksLargest(t *testing.T) {
	ev, ok := eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 7},
		From: &tgbotapi.User{FirstName: "Max"},
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90},
			{FileID: "large", Width: 1280},
		},
	}})
	if !ok {
		t.Fatal("photo update must produce an event")
	}
	photo, ok := ev.(chat.PhotoMessage)
	if !ok {
		t.Fatalf("event type = %T, want PhotoMessage", ev)
	}
	if photo.AttachmentID != "large" {
		t.Fatalf("attachment = %q, want the largest size", photo.AttachmentID)
	}
}

func TestEventFromUpdateCallback(t *testing.T) {
	ev, ok := eventFromUpdate(tgbotapi.Update{CallbackQuery: &tgbotapi.CallbackQuery{
		ID:      "cb1",
		Data:    "urg:normal",
		From:    &tgbotapi.User{FirstName: "Max"},
		Message: &tgbotapi.Message{Chat: &tgbotapi.Chat{ID: 42}},
	}})
	if !ok {
		t.Fatal("callback update must produce an event")
	}
	sel, ok := ev.(chat.SelectionMessage)
	if !ok {
		t.Fatalf("event type = %T, want SelectionMessage", ev)
	}
	if sel.Token != "urg:normal" || sel.Identity != "42" {
		t.Fatalf("selection = %+v", sel)
	}
}

func TestEventFromUpdateIgnoresOtherKinds(t *testing.T) {
	if _, ok := eventFromUpdate(tgbotapi.Update{}); ok {
		t.Fatal("empty update must be ignored")
	}
	if _, ok := eventFromUpdate(tgbotapi.Update{Message: &tgbotapi.Message{
		Chat: &tgbotapi.Chat{ID: 1},
	}}); ok {
		t.Fatal("message without text or photo must be ignored")
	}
}
