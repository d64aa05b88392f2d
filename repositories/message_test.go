package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"chat-relay/domain"
)

func newTestRepository(t *testing.T) MessageRepository {
	t.Helper()
	// Reduced to 16 Mo for testing (avoid gigabytes of value log)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewMessageRepository(db, logs.GetLoggerFromLevel(slog.LevelError))
}

func TestStoreRoomMessage_HistoryInSendOrder(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	// Given five messages sent in sequence to one room
	texts := []string{"one", "two", "three", "four", "five"}
	for _, text := range texts {
		req.NoError(repository.StoreRoomMessage(domain.NewChatMessage("general", "alice", text)))
	}
	// And a message in another room
	req.NoError(repository.StoreRoomMessage(domain.NewChatMessage("random", "bob", "elsewhere")))

	// When listing the room history
	messages, err := repository.ListRoomHistory("general")
	req.NoError(err)

	// Then exactly those messages come back, oldest first
	req.Equal(texts, lo.Map(messages, func(m domain.ChatMessage, _ int) string {
		return m.Text
	}))
	for _, m := range messages {
		req.Equal("general", m.Room)
		req.Equal("alice", m.Sender)
	}
}

func TestStoreRoomMessage_RoundTripFields(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	sent := domain.NewChatMessage("general", "alice", "hi")
	req.NoError(repository.StoreRoomMessage(sent))

	messages, err := repository.ListRoomHistory("general")
	req.NoError(err)
	req.Len(messages, 1)
	req.Equal(sent.ID, messages[0].ID)
	req.Equal(sent.Text, messages[0].Text)
	req.Equal(sent.At.UnixNano(), messages[0].At.UnixNano())
}

func TestListRoomHistory_UnknownRoomIsEmpty(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	messages, err := repository.ListRoomHistory("nobody-posted-here")
	req.NoError(err)
	req.Empty(messages)
}

func TestListPersonalHistory_UnorderedPair(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	// Given a conversation in both directions, plus noise with a third user
	req.NoError(repository.StorePersonalMessage(domain.NewPersonalMessage("alice", "bob", "hello bob")))
	req.NoError(repository.StorePersonalMessage(domain.NewPersonalMessage("bob", "alice", "hello alice")))
	req.NoError(repository.StorePersonalMessage(domain.NewPersonalMessage("alice", "carol", "hello carol")))

	// When listing the pair history from either side
	fromAlice, err := repository.ListPersonalHistory("alice", "bob")
	req.NoError(err)
	fromBob, err := repository.ListPersonalHistory("bob", "alice")
	req.NoError(err)

	// Then both directions are included, in send order, identically
	req.Equal(fromAlice, fromBob)
	req.Len(fromAlice, 2)
	req.Equal("hello bob", fromAlice[0].Text)
	req.Equal("hello alice", fromAlice[1].Text)
}

func TestStorePersonalMessage_KeepsNanosecondOrder(t *testing.T) {
	req := require.New(t)
	repository := newTestRepository(t)

	base := time.Now().UTC()
	for i := 0; i < 10; i++ {
		message := domain.NewPersonalMessage("alice", "bob", "burst")
		message.At = base.Add(time.Duration(i) * time.Nanosecond)
		req.NoError(repository.StorePersonalMessage(message))
	}

	messages, err := repository.ListPersonalHistory("alice", "bob")
	req.NoError(err)
	req.Len(messages, 10)
	for i := 1; i < len(messages); i++ {
		req.True(messages[i].At.After(messages[i-1].At))
	}
}
