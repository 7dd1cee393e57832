package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Authentication ────────────────────────────────────────────────
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrSessionInvalidated ErrCode = "SESSION_INVALIDATED"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation ErrCode = "VALIDATION_ERROR"
	ErrReference  ErrCode = "REFERENCE_ERROR"
	ErrDuplicate  ErrCode = "DUPLICATE_ID"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"

	// ─── Rate Limiting ─────────────────────────────────────────────────
	ErrRateLimitExceeded ErrCode = "RATE_LIMIT_EXCEEDED"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrInvalidCredentials:
		return "incorrect password"
	case ErrSessionInvalidated:
		return "session is no longer active, sign in again"
	case ErrTokenRequired:
		return "authentication token required"
	case ErrTokenInvalid:
		return "authentication token invalid"
	case ErrValidation:
		return "validation failed"
	case ErrReference:
		return "referenced user does not exist"
	case ErrDuplicate:
		return "studentId already in use"
	case ErrNotFound:
		return "not found"
	case ErrRateLimitExceeded:
		return "too many requests, try again later"
	case ErrInternal:
		return "internal server error"
	default:
		return "unexpected error"
	}
}
