package ws

import (
	"encoding/json"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/websocket"

	"chat-relay/domain"
)

var validate = validator.New()

// PersonalHandler relays point-to-point messages. The session registers
// under the caller's own username so that other users can address it.
// Inbound frames are JSON {to, text}; malformed or invalid frames are
// dropped and the loop continues. Each accepted message is persisted,
// delivered to every live session of the recipient, and unconditionally
// echoed back to the originating session.
func (r *Relay) PersonalHandler() gin.HandlerFunc {
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

		session := NewSession(username, conn, r.bufferSize, r.log)
		go session.WritePump()

		r.registry.Join(username, session)
		r.log.Info("Personal session opened", "user", username)
		defer func() {
			r.registry.Leave(username, session)
			session.Close()
			r.log.Info("Personal session closed", "user", username)
		}()

		for {
			messageType, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if messageType != websocket.TextMessage {
				continue
			}

			var request personalRequest
			if err := json.Unmarshal(data, &request); err != nil {
				r.log.Debug("Dropping malformed personal frame", "user", username)
				continue
			}
			if err := validate.Struct(request); err != nil {
				r.log.Debug("Dropping invalid personal frame", "user", username)
				continue
			}

			message := domain.NewPersonalMessage(username, request.To, request.Text)
			if err := r.repository.StorePersonalMessage(message); err != nil {
				r.log.Error("Failed to persist personal message",
					"sender", username, "recipient", request.To, "error", err)
			}

			payload, err := json.Marshal(toPersonalFrame(message))
			if err != nil {
				r.log.Error("Failed to serialize personal message", "error", err)
				continue
			}

			// The recipient may be offline; zero deliveries is fine.
			r.registry.Fanout(request.To, payload)

			// Delivery confirmation to the sender, independent of
			// whether the recipient was reachable.
			if err := session.Send(payload); err != nil {
				r.log.Debug("Echo to sender failed", "user", username, "error", err)
			}
		}
	}
}
