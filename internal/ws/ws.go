// Package ws pushes live updates to connected clients over websockets.
package ws

import (
	"encoding/json"
	"time"

	"github.com/analizador-gastos/backend/internal/evaluator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/olahol/melody"
	"github.com/rs/zerolog/log"
)

const sessionUserID = "user_id"

// Hub manages websocket sessions. Messages are only delivered to sessions
// of the user they concern.
type Hub struct {
	m *melody.Melody
}

func NewHub() *Hub {
	m := melody.New()

	m.Config.MaxMessageSize = 1024
	m.Config.PingPeriod = 30 * time.Second
	m.Config.PongWait = 60 * time.Second

	m.HandleDisconnect(func(s *melody.Session) {
		userID, _ := s.Get(sessionUserID)
		log.Debug().Any("user", userID).Msg("websocket client disconnected")
	})

	m.HandleError(func(_ *melody.Session, err error) {
		log.Debug().Err(err).Msg("websocket error")
	})

	return &Hub{m: m}
}

// Handle upgrades the request to a websocket session bound to the user.
func (h *Hub) Handle(c *gin.Context, userID uuid.UUID) error {
	return h.m.HandleRequestWithKeys(c.Writer, c.Request, map[string]interface{}{
		sessionUserID: userID.String(),
	})
}

type statusMessage struct {
	Type string                   `json:"type"`
	Data []evaluator.BudgetStatus `json:"data"`
}

// BroadcastBudgetStatus sends fresh budget statuses to all sessions of the
// user.
func (h *Hub) BroadcastBudgetStatus(userID uuid.UUID, statuses []evaluator.BudgetStatus) {
	msg, err := json.Marshal(statusMessage{
		Type: "budget_status",
		Data: statuses,
	})
	if err != nil {
		log.Error().Err(err).Msg("marshalling budget status broadcast")
		return
	}

	err = h.m.BroadcastFilter(msg, func(s *melody.Session) bool {
		id, exists := s.Get(sessionUserID)
		return exists && id == userID.String()
	})
	if err != nil {
		log.Warn().Err(err).Str("user", userID.String()).Msg("broadcasting budget status failed")
	}
}

// Close closes all sessions.
func (h *Hub) Close() error {
	return h.m.Close()
}
