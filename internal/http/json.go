package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/resumelab/resumelab/internal/errors"
	"github.com/resumelab/resumelab/internal/service"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusBadRequest, ErrCode: "invalid_json", Err: err})
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// ErrorParams groups parameters for WriteError.
type ErrorParams struct {
	Code    int
	ErrCode string
	Err     error
	// Field names the offending request field for validation errors.
	Field string
	// ExistingID points at the already-active duplicate for conflict errors.
	ExistingID string
}

type errorBody struct {
	Error      string `json:"error"`
	Message    string `json:"message"`
	Field      string `json:"field,omitempty"`
	ExistingID string `json:"existing_id,omitempty"`
}

// WriteError writes a JSON error response using ErrorParams.
func WriteError(w http.ResponseWriter, p ErrorParams) {
	WriteJSON(w, p.Code, errorBody{
		Error:      p.ErrCode,
		Message:    p.Err.Error(),
		Field:      p.Field,
		ExistingID: p.ExistingID,
	})
}

// WriteServiceError maps a service-layer error onto an HTTP error response
// using its apperrors classification. Unclassified errors come back as an
// opaque 500 so internals never leak to clients.
func WriteServiceError(w http.ResponseWriter, err error) {
	params := ErrorParams{Err: err}

	var dup *service.DuplicateImprovementError
	if errors.As(err, &dup) {
		params.ExistingID = dup.ExistingID
	}

	switch code := apperrors.GetCode(err); code {
	case apperrors.ErrCodeNotFound:
		params.Code = http.StatusNotFound
		params.ErrCode = string(code)
	case apperrors.ErrCodeConflict:
		params.Code = http.StatusConflict
		params.ErrCode = string(code)
	case apperrors.ErrCodeValidation:
		params.Code = http.StatusBadRequest
		params.ErrCode = string(code)
		params.Field = apperrors.GetField(err)
	case apperrors.ErrCodeUnauthorized:
		params.Code = http.StatusUnauthorized
		params.ErrCode = string(code)
	case apperrors.ErrCodeUnavailable:
		params.Code = http.StatusBadGateway
		params.ErrCode = string(code)
	case apperrors.ErrCodeTimeout:
		params.Code = http.StatusGatewayTimeout
		params.ErrCode = string(code)
	default:
		params.Code = http.StatusInternalServerError
		params.ErrCode = "internal"
		params.Err = errors.New("internal server error")
	}

	WriteError(w, params)
}
