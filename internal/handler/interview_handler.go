package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/presenter"
	"github.com/praxise/interview-backend/internal/response"
	"github.com/praxise/interview-backend/internal/service"
	"github.com/praxise/interview-backend/internal/validator"
)

// InterviewHandler handles the conversational endpoints: starting the
// interview, submitting answers, and ending early. Every reply carries the
// raw action plus a rendered prompt in the session's interaction mode.
type InterviewHandler struct {
	interviews *service.InterviewService
}

// NewInterviewHandler creates a new InterviewHandler.
func NewInterviewHandler(interviews *service.InterviewService) *InterviewHandler {
	return &InterviewHandler{interviews: interviews}
}

// Start godoc
// POST /api/v1/sessions/:id/start
// Generates the question set and returns the first question.
func (h *InterviewHandler) Start(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	first, err := h.interviews.Initialize(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}

	action := model.NextQuestionAction(first)
	h.renderAction(c, id, action, http.StatusOK)
}

// Respond godoc
// POST /api/v1/sessions/:id/responses
// Records an answer and returns the next interview turn.
func (h *InterviewHandler) Respond(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	var req model.SubmitResponseRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}
	questionID, err := uuid.Parse(req.QuestionID)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	action, err := h.interviews.ProcessResponse(c.Request.Context(), id, questionID, req.Text, req.ResponseSeconds)
	if err != nil {
		failFromErr(c, err)
		return
	}
	h.renderAction(c, id, action, http.StatusOK)
}

// End godoc
// POST /api/v1/sessions/:id/end
// Ends the interview early; with no answers recorded this redirects instead.
func (h *InterviewHandler) End(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}

	action, err := h.interviews.EndEarly(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	h.renderAction(c, id, action, http.StatusOK)
}

// renderAction re-reads the session for its mode and behavior, renders the
// action through the matching presenter, and sends both forms.
func (h *InterviewHandler) renderAction(c *gin.Context, id uuid.UUID, action model.Action, status int) {
	sess, err := h.interviews.GetSession(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
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

	response.Success(c, status, gin.H{
		"action": action,
		"prompt": prompt,
		"status": sess.Status,
	})
}
