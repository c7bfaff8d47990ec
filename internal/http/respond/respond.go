package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hostelhq/hostelhq/internal/validate"
)

// envelope is the wire shape every endpoint replies with.
type envelope struct {
	Status  bool                  `json:"status"`
	Message string                `json:"message,omitempty"`
	Data    any                   `json:"data,omitempty"`
	Errors  []validate.FieldError `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, code int, env envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(env); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// JSON replies with a successful data payload.
func JSON(w http.ResponseWriter, code int, data any) {
	write(w, code, envelope{Status: true, Data: data})
}

// Message replies with a successful operation message and no payload.
func Message(w http.ResponseWriter, code int, message string) {
	write(w, code, envelope{Status: true, Message: message})
}

// Fail replies with a single operation-level error message.
func Fail(w http.ResponseWriter, code int, message string) {
	write(w, code, envelope{Status: false, Message: message})
}

// Validation replies with per-field errors so the caller can highlight
// individual inputs.
func Validation(w http.ResponseWriter, verr *validate.Error) {
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  false,
		Message: "validation failed",
		Errors:  verr.Fields,
	})
}
