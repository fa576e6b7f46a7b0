package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/presenter"
	"github.com/praxise/interview-backend/internal/service"
)

// buildUpgrader creates a WebSocket upgrader with origin validation.
// An empty allow-list permits all origins (development mode).
func buildUpgrader(allowedOrigins []string) websocket.Upgrader {
	return websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			if len(allowedOrigins) == 0 {
				return true
			}
			origin := r.Header.Get("Origin")
			for _, allowed := range allowedOrigins {
				if strings.EqualFold(allowed, origin) {
					return true
				}
			}
			return false
		},
	}
}

// LiveHandler runs a whole interview over one WebSocket connection: the
// server pushes questions, the client answers, and the final frame carries
// the feedback report.
type LiveHandler struct {
	interviews *service.InterviewService
	log        zerolog.Logger
	upgrader   websocket.Upgrader
}

// NewLiveHandler creates a new LiveHandler.
func NewLiveHandler(interviews *service.InterviewService, log zerolog.Logger, allowedOrigins []string) *LiveHandler {
	return &LiveHandler{
		interviews: interviews,
		log:        log.With().Str("component", "live_handler").Logger(),
		upgrader:   buildUpgrader(allowedOrigins),
	}
}

// liveAnswer is a client frame carrying one answer.
type liveAnswer struct {
	QuestionID      string  `json:"question_id"`
	Text            string  `json:"text"`
	ResponseSeconds float64 `json:"response_seconds"`
}

// liveFrame is a server frame: one interview turn plus its rendered prompt.
type liveFrame struct {
	Action model.Action `json:"action"`
	Prompt string       `json:"prompt"`
	Error  string       `json:"error,omitempty"`
}

// Stream godoc
// WS /ws/sessions/:id
// Upgrades to WebSocket and drives the interview turn by turn. The session
// must be in the INITIALIZED state; the handler starts it itself.
func (h *LiveHandler) Stream(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session ID"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.log.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	log := h.log.With().Str("session_id", id.String()).Logger()
	ctx := c.Request.Context()

	first, err := h.interviews.Initialize(ctx, id)
	if err != nil {
		_ = conn.WriteJSON(liveFrame{Error: err.Error()})
		return
	}
	if !h.push(ctx, conn, id, model.NextQuestionAction(first), &log) {
		return
	}

	for {
		var answer liveAnswer
		if err := conn.ReadJSON(&answer); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn().Err(err).Msg("Connection dropped mid-interview")
			}
			return
		}

		questionID, err := uuid.Parse(answer.QuestionID)
		if err != nil {
			_ = conn.WriteJSON(liveFrame{Error: "invalid question ID"})
			continue
		}

		action, err := h.interviews.ProcessResponse(ctx, id, questionID, answer.Text, answer.ResponseSeconds)
		if err != nil {
			_ = conn.WriteJSON(liveFrame{Error: err.Error()})
			continue
		}
		if !h.push(ctx, conn, id, action, &log) {
			return
		}
		if action.Type == model.ActionComplete {
			return
		}
	}
}

// push renders and writes one frame; false means the connection is gone.
func (h *LiveHandler) push(ctx context.Context, conn *websocket.Conn, id uuid.UUID, action model.Action, log *zerolog.Logger) bool {
	sess, err := h.interviews.GetSession(ctx, id)
	if err != nil {
		_ = conn.WriteJSON(liveFrame{Error: err.Error()})
		return false
	}

	p := presenter.ForMode(sess.Mode)
	var prompt string
	switch action.Type {
	case model.ActionNextQuestion, model.ActionFollowUp:
		prompt = p.RenderQuestion(action.Question, sess.Behavior)
	case model.ActionRedirect:
		prompt = p.RenderRedirect(action.Message, sess.Behavior)
	case model.ActionComplete:
		prompt = p.RenderFeedback(action.Feedback)
	}

	if err := conn.WriteJSON(liveFrame{Action: action, Prompt: prompt}); err != nil {
		log.Warn().Err(err).Msg("Write failed")
		return false
	}
	return true
}
