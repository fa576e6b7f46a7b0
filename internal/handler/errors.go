package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/praxise/interview-backend/internal/response"
	"github.com/praxise/interview-backend/internal/service"
)

// failFromErr maps service sentinel errors to the API error taxonomy.
func failFromErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrSessionNotFound)
	case errors.Is(err, service.ErrUnknownRole):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownRole)
	case errors.Is(err, service.ErrUnknownLevel):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrUnknownLevel)
	case errors.Is(err, service.ErrAlreadyStarted):
		response.Fail(c, http.StatusConflict, response.ErrAlreadyStarted)
	case errors.Is(err, service.ErrNotStarted):
		response.Fail(c, http.StatusConflict, response.ErrNotStarted)
	case errors.Is(err, service.ErrSessionFinalized):
		response.Fail(c, http.StatusConflict, response.ErrSessionFinalized)
	case errors.Is(err, service.ErrNotFinalized):
		response.Fail(c, http.StatusConflict, response.ErrNotFinalized)
	case errors.Is(err, service.ErrDuplicateAnswer), errors.Is(err, service.ErrInvalidState):
		response.Fail(c, http.StatusConflict, response.ErrInvalidState)
	case errors.Is(err, service.ErrContinuationType):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrContinuationType)
	case errors.Is(err, service.ErrContinuationFields):
		response.Fail(c, http.StatusUnprocessableEntity, response.ErrContinuationFields)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
