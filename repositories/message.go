//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"chat-relay/domain"
)

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) MessageRepository {
	return MessageRepository{db: db, log: log}
}

type diskChatMessage struct {
	ID     string `json:"id"`
	Room   string `json:"room"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
	At     int64  `json:"at"` // unix nanoseconds
}

type diskPersonalMessage struct {
	ID        string `json:"id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
	Text      string `json:"text"`
	At        int64  `json:"at"`
}

// StoreRoomMessage persists a room message in BadgerDB.
// The key is formatted as "msg:{room}:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (m MessageRepository) StoreRoomMessage(message domain.ChatMessage) error {
	key := fmt.Sprintf("msg:%s:%019d:%s",
		message.Room,
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(fromChatMessage(message))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// StorePersonalMessage persists a personal message under
// "pm:{low}|{high}:{timestamp_padded}:{uuid}" where low/high is the
// lexicographically ordered identity pair. Both directions of a
// conversation share one prefix, so the unordered-pair history query is a
// single scan.
func (m MessageRepository) StorePersonalMessage(message domain.PersonalMessage) error {
	key := fmt.Sprintf("pm:%s:%019d:%s",
		pairKey(message.Sender, message.Recipient),
		message.At.UnixNano(),
		message.ID,
	)
	bytes, err := json.Marshal(fromPersonalMessage(message))
	if err != nil {
		return err
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListRoomHistory retrieves every message of a room using a prefix scan.
// Thanks to the padded timestamp in the key, messages come out naturally
// sorted by send time, oldest first.
func (m MessageRepository) ListRoomHistory(room string) ([]domain.ChatMessage, error) {
	prefix := []byte(fmt.Sprintf("msg:%s:", room))
	values, err := m.scan(prefix)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.ChatMessage, 0, len(values))
	for _, b := range values {
		var disk diskChatMessage
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		message, err := toChatMessage(disk)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

// ListPersonalHistory retrieves every message exchanged between exactly
// that unordered pair of users, oldest first.
func (m MessageRepository) ListPersonalHistory(userA, userB string) ([]domain.PersonalMessage, error) {
	prefix := []byte(fmt.Sprintf("pm:%s:", pairKey(userA, userB)))
	values, err := m.scan(prefix)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.PersonalMessage, 0, len(values))
	for _, b := range values {
		var disk diskPersonalMessage
		if err = json.Unmarshal(b, &disk); err != nil {
			return nil, err
		}
		message, err := toPersonalMessage(disk)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func (m MessageRepository) scan(prefix []byte) ([][]byte, error) {
	var values [][]byte
	err := m.db.View(func(txn *badger.Txn) error {
		options := badger.DefaultIteratorOptions
		options.Prefix = prefix
		it := txn.NewIterator(options)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			value, err := it.Item().ValueCopy(nil)
			if err != nil {
				return err
			}
			values = append(values, value)
		}
		return nil
	})
	return values, err
}

// pairKey builds the shared conversation prefix for two usernames.
// The separator '|' cannot appear in usernames issued by the auth
// collaborator, keeping the key unambiguous.
func pairKey(a, b string) string {
	if strings.Compare(a, b) > 0 {
		a, b = b, a
	}
	return a + "|" + b
}

func fromChatMessage(message domain.ChatMessage) diskChatMessage {
	return diskChatMessage{
		ID:     message.ID.String(),
		Room:   message.Room,
		Sender: message.Sender,
		Text:   message.Text,
		At:     message.At.UnixNano(),
	}
}

func toChatMessage(disk diskChatMessage) (domain.ChatMessage, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.ChatMessage{}, err
	}
	return domain.ChatMessage{
		ID:     parsedID,
		Room:   disk.Room,
		Sender: disk.Sender,
		Text:   disk.Text,
		At:     time.Unix(0, disk.At).UTC(),
	}, nil
}

func fromPersonalMessage(message domain.PersonalMessage) diskPersonalMessage {
	return diskPersonalMessage{
		ID:        message.ID.String(),
		Sender:    message.Sender,
		Recipient: message.Recipient,
		Text:      message.Text,
		At:        message.At.UnixNano(),
	}
}

func toPersonalMessage(disk diskPersonalMessage) (domain.PersonalMessage, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.PersonalMessage{}, err
	}
	return domain.PersonalMessage{
		ID:        parsedID,
		Sender:    disk.Sender,
		Recipient: disk.Recipient,
		Text:      disk.Text,
		At:        time.Unix(0, disk.At).UTC(),
	}, nil
}
