// Package domain contains core concepts of the relay.
// This file defines the two message kinds and their construction rules.
// Messages are immutable once created: the sender is always the
// authenticated identity of the connection, never taken from the payload.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage represents one message posted to a room.
type ChatMessage struct {
	ID     uuid.UUID // unique identifier
	Room   string
	Sender string
	Text   string
	At     time.Time
}

// PersonalMessage represents one message addressed to a single recipient.
// The recipient is client-supplied and only checked for non-emptiness;
// delivery is best effort.
type PersonalMessage struct {
	ID        uuid.UUID
	Sender    string
	Recipient string
	Text      string
	At        time.Time
}

func NewChatMessage(room, sender, text string) ChatMessage {
	return ChatMessage{
		ID:     uuid.New(),
		Room:   room,
		Sender: sender,
		Text:   text,
		At:     time.Now().UTC(),
	}
}

func NewPersonalMessage(sender, recipient, text string) PersonalMessage {
	return PersonalMessage{
		ID:        uuid.New(),
		Sender:    sender,
		Recipient: recipient,
		Text:      text,
		At:        time.Now().UTC(),
	}
}
