// Package http wires the relay's outer surface: the two WebSocket
// streaming endpoints and the history retrieval routes.
package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"chat-relay/infrastructure/ws"
)

// NewRouter configures the gin engine with logging, recovery and all
// relay routes.
func NewRouter(log *slog.Logger, relay *ws.Relay, history *HistoryHandler) *gin.Engine {
	r := gin.New()
	r.Use(slogMiddleware(log), gin.Recovery())

	r.GET("/chat/:chatId/history", history.RoomHistory)
	r.GET("/personal/history/:with", history.PersonalHistory)

	r.GET("/chat/:chatId", relay.RoomHandler())
	r.GET("/personal", relay.PersonalHandler())

	return r
}

// slogMiddleware logs one line per request. Streaming routes log the
// line when the connection ends, which doubles as a session duration
// record.
func slogMiddleware(log *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
			"client_ip", c.ClientIP(),
		)
	}
}
