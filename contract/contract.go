//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"chat-relay/domain"
)

// MessageRepository is the durable append/query store consumed by the
// relay. Append failures are fatal to that single message's persistence
// only; callers log and keep the connection alive.
type MessageRepository interface {
	StoreRoomMessage(message domain.ChatMessage) error
	StorePersonalMessage(message domain.PersonalMessage) error
	ListRoomHistory(room string) ([]domain.ChatMessage, error)
	ListPersonalHistory(userA, userB string) ([]domain.PersonalMessage, error)
}

// Sink is the send side of one live connection.
// Send must never block: a full buffer returns an error and the caller
// decides what to do with the session.
type Sink interface {
	Send(payload []byte) error
	Close()
}

// SessionRegistry tracks live sessions under a string key: a room name
// for broadcast, or a username for personal delivery.
type SessionRegistry interface {
	Join(key string, sink Sink)
	Leave(key string, sink Sink)
	Fanout(key string, payload []byte) int
}
