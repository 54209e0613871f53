package chat

import (
	"context"

	"github.com/polkiloo/procurebot/internal/domain/model"
)

// Event is an inbound chat update. Exactly one of the payload kinds applies.
type Event interface {
	EventIdentity() model.Identity
}

// TextMessage is a plain text input from a user.
type TextMessage struct {
	Identity model.Identity
	Sender   string
	Text     string
}

// PhotoMessage carries an opaque attachment handle.
type PhotoMessage struct {
	Identity     model.Identity
	Sender       string
	AttachmentID string
}

// CommandMessage is a slash command with optional arguments.
type CommandMessage struct {
	Identity model.Identity
	Sender   string
	Name     string
	Args     []string
}

// SelectionMessage is a choice pressed on an offered keyboard.
type SelectionMessage struct {
	Identity model.Identity
	Sender   string
	Token    string
}

func (e TextMessage) EventIdentity() model.Identity      { return e.Identity }
func (e PhotoMessage) EventIdentity() model.Identity     { return e.Identity }
func (e CommandMessage) EventIdentity() model.Identity   { return e.Identity }
func (e SelectionMessage) EventIdentity() model.Identity { return e.Identity }

// Choice is one selectable option: a display label plus the opaque token
// returned in the resulting SelectionMessage.
type Choice struct {
	Label string
	Token string
}

// Sink delivers outbound messages back through the transport.
type Sink interface {
	SendText(ctx context.Context, identity model.Identity, text string) error
	SendPhoto(ctx context.Context, identity model.Identity, attachmentID, caption string) error
	OfferChoices(ctx context.Context, identity model.Identity, prompt string, choices []Choice) error
}
