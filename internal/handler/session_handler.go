package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/praxise/interview-backend/internal/model"
	"github.com/praxise/interview-backend/internal/response"
	"github.com/praxise/interview-backend/internal/service"
	"github.com/praxise/interview-backend/internal/validator"
)

// SessionHandler handles session lifecycle endpoints: creation, progress,
// and continuations.
type SessionHandler struct {
	interviews *service.InterviewService
	catalog    *service.RoleCatalog
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(interviews *service.InterviewService, catalog *service.RoleCatalog) *SessionHandler {
	return &SessionHandler{interviews: interviews, catalog: catalog}
}

// Create godoc
// POST /api/v1/sessions
// Creates a new interview session in the INITIALIZED state.
func (h *SessionHandler) Create(c *gin.Context) {
	var req model.CreateSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sess, err := h.interviews.CreateSession(c.Request.Context(), &req)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

// Get godoc
// GET /api/v1/sessions/:id
// Returns the full session aggregate.
func (h *SessionHandler) Get(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	sess, err := h.interviews.GetSession(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"session": sess})
}

// Progress godoc
// GET /api/v1/sessions/:id/progress
// Reports primary-question progress; follow-ups never count.
func (h *SessionHandler) Progress(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	progress, err := h.interviews.GetProgress(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"progress": progress})
}

// Continuations godoc
// GET /api/v1/sessions/:id/continuations
// Offers follow-on session options for a finalized interview.
func (h *SessionHandler) Continuations(c *gin.Context) {
	id, ok := sessionID(c)
	if !ok {
		return
	}
	prompt, err := h.interviews.GenerateContinuationPrompt(c.Request.Context(), id)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"continuation": prompt})
}

// Continue godoc
// POST /api/v1/sessions/continue
// Spawns a new session from a finalized one.
func (h *SessionHandler) Continue(c *gin.Context) {
	var req model.ContinueSessionRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	sess, err := h.interviews.CreateContinuationSession(c.Request.Context(), &req)
	if err != nil {
		failFromErr(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"session": sess})
}

// Roles godoc
// GET /api/v1/roles
// Lists the interviewable role profiles.
func (h *SessionHandler) Roles(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"roles": h.catalog.List()})
}

// sessionID parses the :id path parameter, failing the request on bad input.
func sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return uuid.Nil, false
	}
	return id, true
}
