package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"chat-relay/auth"
	"chat-relay/contract"
	"chat-relay/domain"
)

type chatMessageResponse struct {
	Sender    string `json:"sender"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type personalMessageResponse struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	Timestamp int64  `json:"timestamp"`
}

type HistoryHandler struct {
	verifier   *auth.Verifier
	repository contract.MessageRepository
	log        *slog.Logger
}

func NewHistoryHandler(verifier *auth.Verifier, repository contract.MessageRepository, log *slog.Logger) *HistoryHandler {
	return &HistoryHandler{verifier: verifier, repository: repository, log: log}
}

// RoomHistory returns every message of a room, oldest first.
func (h *HistoryHandler) RoomHistory(c *gin.Context) {
	room := c.Param("chatId")
	if room == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat room not specified"})
		return
	}

	messages, err := h.repository.ListRoomHistory(room)
	if err != nil {
		h.log.Error("Failed to load room history", "room", room, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(messages, func(m domain.ChatMessage, _ int) chatMessageResponse {
		return chatMessageResponse{Sender: m.Sender, Text: m.Text, Timestamp: m.At.UnixMilli()}
	}))
}

// PersonalHistory returns the conversation between the authenticated
// caller and the user named in the path, oldest first. The caller is
// identified from the token query parameter, like the streaming
// endpoints.
func (h *HistoryHandler) PersonalHistory(c *gin.Context) {
	username, err := h.verifier.Verify(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}

	withUser := c.Param("with")
	if withUser == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing parameters"})
		return
	}

	messages, err := h.repository.ListPersonalHistory(username, withUser)
	if err != nil {
		h.log.Error("Failed to load personal history",
			"user", username, "with", withUser, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}

	c.JSON(http.StatusOK, lo.Map(messages, func(m domain.PersonalMessage, _ int) personalMessageResponse {
		return personalMessageResponse{From: m.Sender, To: m.Recipient, Text: m.Text, Timestamp: m.At.UnixMilli()}
	}))
}
