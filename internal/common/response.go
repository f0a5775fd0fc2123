package common

import (
	"net/http"

	"github.com/goccy/go-json"

	"viztube/internal/logging"
)

// ApiResponse is the success envelope.
type ApiResponse struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// ApiError is the failure envelope. Stack is only filled in development.
type ApiError struct {
	StatusCode int      `json:"statusCode"`
	Message    string   `json:"message"`
	Errors     []string `json:"errors"`
	Success    bool     `json:"success"`
	Stack      string   `json:"stack,omitempty"`
}

// NewApiResponse builds a success envelope; success follows the status code.
func NewApiResponse(status int, data interface{}, message string) ApiResponse {
	if message == "" {
		message = "Success"
	}
	return ApiResponse{StatusCode: status, Data: data, Message: message, Success: status < 400}
}

// Responder writes envelopes. Development controls whether stacks leak.
type Responder struct {
	Development bool
}

func NewResponder(development bool) *Responder {
	return &Responder{Development: development}
}

// JSON writes a success envelope with the given status.
func (rs *Responder) JSON(w http.ResponseWriter, r *http.Request, status int, data interface{}, message string) {
	writeJSON(w, r, status, NewApiResponse(status, data, message))
}

// Error converts err into the failure envelope.
func (rs *Responder) Error(w http.ResponseWriter, r *http.Request, err error) {
	appErr := AsAppError(err)
	status := appErr.Kind.Status()

	body := ApiError{
		StatusCode: status,
		Message:    appErr.Message,
		Errors:     appErr.Errors,
		Success:    false,
	}
	if body.Errors == nil {
		body.Errors = []string{}
	}
	if rs.Development {
		body.Stack = appErr.Stack()
	}

	ev := logging.Ctx(r.Context()).Warn()
	if status >= http.StatusInternalServerError {
		ev = logging.Ctx(r.Context()).Error()
	}
	ev.Err(appErr).Str("kind", appErr.Kind.String()).Int("status", status).Msg("request failed")

	writeJSON(w, r, status, body)
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("encode response")
	}
}
