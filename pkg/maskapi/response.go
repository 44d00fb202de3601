package maskapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/inputmask/pkg/fields"
	"github.com/dmitrymomot/inputmask/pkg/mask"
	"github.com/dmitrymomot/inputmask/pkg/validator"
)

// Envelope is the body of every response.
type Envelope struct {
	Data  any          `json:"data,omitempty"`
	Error *ErrorDetail `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Details map[string][]string `json:"details,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body Envelope) error {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

// errorResponse maps an error to its status and detail. Unknown errors are
// reported as internal without exposing their text.
func errorResponse(err error) (int, *ErrorDetail) {
	var verrs validator.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		details := make(map[string][]string)
		for _, e := range verrs {
			details[e.Field] = append(details[e.Field], e.Message)
		}
		return http.StatusUnprocessableEntity, &ErrorDetail{Code: "validation_error", Message: err.Error(), Details: details}
	case errors.Is(err, mask.ErrInvalidPattern):
		return http.StatusUnprocessableEntity, &ErrorDetail{Code: "invalid_pattern", Message: err.Error()}
	case errors.Is(err, fields.ErrUnknownField):
		return http.StatusNotFound, &ErrorDetail{Code: "unknown_mask", Message: err.Error()}
	case errors.Is(err, ErrMissingContentType), errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, &ErrorDetail{Code: "unsupported_media_type", Message: err.Error()}
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests, &ErrorDetail{Code: "rate_limited", Message: err.Error()}
	case errors.Is(err, ErrInvalidJSON):
		return http.StatusBadRequest, &ErrorDetail{Code: "invalid_json", Message: err.Error()}
	default:
		return http.StatusInternalServerError, &ErrorDetail{Code: "internal_error", Message: http.StatusText(http.StatusInternalServerError)}
	}
}
