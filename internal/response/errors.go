package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation     ErrCode = "VALIDATION_ERROR"
	ErrInvalidID      ErrCode = "INVALID_ID"
	ErrInvalidPayload ErrCode = "INVALID_PAYLOAD"
	ErrUnknownRole    ErrCode = "UNKNOWN_ROLE"
	ErrUnknownLevel   ErrCode = "UNKNOWN_LEVEL"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"

	// ─── Session state ─────────────────────────────────────────────────
	ErrInvalidState     ErrCode = "INVALID_SESSION_STATE"
	ErrAlreadyStarted   ErrCode = "SESSION_ALREADY_STARTED"
	ErrNotStarted       ErrCode = "SESSION_NOT_STARTED"
	ErrSessionFinalized ErrCode = "SESSION_FINALIZED"
	ErrNotFinalized     ErrCode = "SESSION_NOT_FINALIZED"

	// ─── Continuation ──────────────────────────────────────────────────
	ErrContinuationType   ErrCode = "INVALID_CONTINUATION_TYPE"
	ErrContinuationFields ErrCode = "MISSING_CONTINUATION_FIELDS"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrUnknownRole:
		return "The requested role is not in the role catalog."
	case ErrUnknownLevel:
		return "Experience level must be one of entry, mid, senior, or lead."
	case ErrNotFound:
		return "Resource not found."
	case ErrSessionNotFound:
		return "Interview session not found."
	case ErrInvalidState:
		return "The session status does not allow this operation."
	case ErrAlreadyStarted:
		return "This session has already been started."
	case ErrNotStarted:
		return "This session has not been started yet."
	case ErrSessionFinalized:
		return "This session has already been finalized."
	case ErrNotFinalized:
		return "This session has not been finalized yet."
	case ErrContinuationType:
		return "Continuation type must be new-round or topic-drill."
	case ErrContinuationFields:
		return "Continuation request is missing required fields."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
