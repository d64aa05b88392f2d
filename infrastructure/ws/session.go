// Package ws implements the relay endpoints: one goroutine per live
// connection reading inbound frames in arrival order, plus one writer
// goroutine per session draining its send buffer.
package ws

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"chat-relay/errors"
)

const writeWait = 10 * time.Second

// Session wraps one live WebSocket connection. It is owned by the
// handler that created it; the registry only holds a reference through
// the Sink interface.
type Session struct {
	username string
	conn     *websocket.Conn
	send     chan []byte
	done     chan struct{}
	once     sync.Once
	log      *slog.Logger
}

func NewSession(username string, conn *websocket.Conn, bufferSize int, log *slog.Logger) *Session {
	return &Session{
		username: username,
		conn:     conn,
		send:     make(chan []byte, bufferSize),
		done:     make(chan struct{}),
		log:      log,
	}
}

func (s *Session) Username() string { return s.username }

// Send queues a payload for delivery. It never blocks: a closed session
// or a full buffer returns an error so fan-out to other recipients is
// never held up by this one.
func (s *Session) Send(payload []byte) error {
	select {
	case <-s.done:
		return errors.ErrSessionClosed
	default:
	}
	select {
	case s.send <- payload:
		return nil
	default:
		return errors.ErrSlowConsumer
	}
}

// Close tears the connection down. Safe to call from any goroutine, any
// number of times; closing also unblocks the read loop of the owning
// handler.
func (s *Session) Close() {
	s.once.Do(func() {
		close(s.done)
		_ = s.conn.Close()
	})
}

// WritePump drains the send buffer onto the wire until the session is
// closed or a write fails. Run as a dedicated goroutine per session.
func (s *Session) WritePump() {
	defer s.Close()

	for {
		select {
		case <-s.done:
			return
		case payload := <-s.send:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				s.log.Debug("Write failed, closing session", "user", s.username, "error", err)
				return
			}
		}
	}
}
