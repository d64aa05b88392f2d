package ws

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // CORS is the reverse proxy's concern in deployment.
	},
}

// Relay carries the collaborators shared by both streaming endpoints.
type Relay struct {
	verifier   *auth.Verifier
	registry   contract.SessionRegistry
	repository contract.MessageRepository
	bufferSize int
	log        *slog.Logger
}

func NewRelay(verifier *auth.Verifier, registry contract.SessionRegistry,
	repository contract.MessageRepository, bufferSize int, log *slog.Logger) *Relay {
	return &Relay{
		verifier:   verifier,
		registry:   registry,
		repository: repository,
		bufferSize: bufferSize,
		log:        log,
	}
}

// RoomHandler upgrades the connection, authenticates it from the token
// query parameter and relays frames for one room. Clients connect with
// ws://host/chat/{chatId}?token=JWT. Inbound frames are the raw message
// body; every frame is persisted and then broadcast to all sessions in
// the room, the sender included.
func (r *Relay) RoomHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			r.log.Error("WebSocket upgrade failed", "error", err)
			return
		}

		username, err := r.verifier.Verify(c.Query("token"))
		if err != nil {
			closeWithPolicyViolation(conn, err.Error())
			return
		}

		room := c.Param("chatId")
		if room == "" {
			closeWithPolicyViolation(conn, "no chat room specified")
			return
		}

		session := NewSession(username, conn, r.bufferSize, r.log)
		go session.WritePump()

		r.registry.Join(room, session)
		r.log.Info("Session joined room", "user", username, "room", room)
		// Cleanup must run on every exit path of the read loop.
		defer func() {
			r.registry.Leave(room, session)
			session.Close()
			r.log.Info("Session left room", "user", username, "room", room)
		}()

		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}

			message := domain.NewChatMessage(room, username, string(data))
			if err := r.repository.StoreRoomMessage(message); err != nil {
				// Availability over durability: the message is still
				// delivered live, it may just be missing from history.
				r.log.Error("Failed to persist room message",
					"room", room, "sender", username, "error", err)
			}

			payload, err := json.Marshal(toRoomFrame(message))
			if err != nil {
				r.log.Error("Failed to serialize room message", "error", err)
				continue
			}
			r.registry.Fanout(room, payload)
		}
	}
}

// closeWithPolicyViolation performs a best-effort close handshake with
// close code 1008, mirroring a rejected credential.
func closeWithPolicyViolation(conn *websocket.Conn, reason string) {
	message := websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(writeWait))
	_ = conn.Close()
}
