package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	mlerrors "github.com/smartcalis/ml-service/pkg/errors"
	"github.com/smartcalis/ml-service/pkg/serializer"
)

// ErrorResponse is the JSON body of every server generated error.
type ErrorResponse struct {
	Code      string         `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	RequestID string         `json:"requestId"`
	Timestamp time.Time      `json:"timestamp"`
	Retryable bool           `json:"retryable"`
}

// WriteError writes a structured error response.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code mlerrors.ErrorCode, message string, retryable bool, details map[string]any) {

	requestID := RequestIDFromContext(r.Context())
	if requestID == "" {
		requestID = uuid.New().String()
	}

	serializer.RespondJSON(w, statusCode, ErrorResponse{
		Code:      string(code),
		Message:   message,
		Details:   details,
		RequestID: requestID,
		Timestamp: time.Now().UTC(),
		Retryable: retryable,
	})
}

// WriteErrorFromErr writes err as a structured error response. Structured
// errors keep their code, message and context; anything else is reported
// as INTERNAL with fallbackMessage.
func WriteErrorFromErr(w http.ResponseWriter, r *http.Request, err error,
	fallbackMessage string, extraDetails map[string]any) {

	if se, ok := mlerrors.As(err); ok {
		message := se.Message
		if message == "" {
			message = fallbackMessage
		}
		details := mergeDetails(se.Context, extraDetails)
		if se.Cause != nil {
			details = mergeDetails(details, map[string]any{"error": se.Cause.Error()})
		}
		WriteError(w, r, HTTPStatusFromCode(se.Code), se.Code, message,
			retryableFromCode(se.Code), details)
		return
	}

	details := extraDetails
	if err != nil {
		details = mergeDetails(extraDetails, map[string]any{"error": err.Error()})
	}
	WriteError(w, r, http.StatusInternalServerError, mlerrors.ErrCodeInternal,
		fallbackMessage, retryableFromCode(mlerrors.ErrCodeInternal), details)
}

// HTTPStatusFromCode maps an error code to its HTTP status.
func HTTPStatusFromCode(code mlerrors.ErrorCode) int {
	switch code {
	case mlerrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case mlerrors.ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case mlerrors.ErrCodeNotFound:
		return http.StatusNotFound
	case mlerrors.ErrCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case mlerrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	case mlerrors.ErrCodeUnavailable:
		return http.StatusServiceUnavailable
	case mlerrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case mlerrors.ErrCodeInternal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func retryableFromCode(code mlerrors.ErrorCode) bool {
	switch code {
	case mlerrors.ErrCodeTimeout,
		mlerrors.ErrCodeUnavailable,
		mlerrors.ErrCodeRateLimitExceeded,
		mlerrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// mergeDetails returns a new map with b's entries overriding a's, or nil
// when both are empty.
func mergeDetails(a, b map[string]any) map[string]any {
	if len(a) == 0 && len(b) == 0 {
		return nil
	}
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
