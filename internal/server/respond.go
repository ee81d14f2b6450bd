package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/sketchwall/sketchwall/pkg/errors"
)

// errorBody is the JSON envelope for error responses.
type errorBody struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps an error to its HTTP status. Internal failures are
// reported without their cause chains; the chain goes to the log, not
// the client.
func writeError(w http.ResponseWriter, err error) {
	if rl, ok := err.(*errors.RateLimitedError); ok {
		if rl.RetryAfter > 0 {
			w.Header().Set("Retry-After", strconv.Itoa(rl.RetryAfter))
		}
		writeJSON(w, http.StatusTooManyRequests, errorBody{Error: rl.Error(), Code: errors.ErrCodeRateLimited})
		return
	}

	code := errors.GetCode(err)
	writeJSON(w, statusFor(code), errorBody{Error: errors.UserMessage(err), Code: code})
}

func statusFor(code errors.Code) int {
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidBoard, errors.ErrCodeInvalidShape,
		errors.ErrCodeInvalidStyle, errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidColor,
		errors.ErrCodeInvalidOptions:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeBoardNotFound, errors.ErrCodeShapeNotFound:
		return http.StatusNotFound
	case errors.ErrCodeRateLimited:
		return http.StatusTooManyRequests
	case errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
