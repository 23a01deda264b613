package helpers

import (
	"encoding/json"
	"errors"
	"net/http"

	"learndash/internal/models"
)

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   int    `json:"error"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// JSON writes {"success": true, ...fields}.
func JSON(w http.ResponseWriter, status int, fields map[string]any) {
	body := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		body[k] = v
	}
	body["success"] = true
	writeJSON(w, status, body)
}

// Error writes {"success": false, "error": status, "code": code, "message": msg}.
func Error(w http.ResponseWriter, status int, code, msg string) {
	writeJSON(w, status, ErrorResponse{Success: false, Error: status, Code: code, Message: msg})
}

// StatusFor maps an error onto the HTTP status and code sent to the client.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, models.CodeNotFound
	case errors.Is(err, models.ErrInvalidInput):
		return http.StatusBadRequest, models.CodeValidation
	case errors.Is(err, models.ErrConflict):
		// duplicates stay a 500, as the dashboard client has always seen them
		return http.StatusInternalServerError, models.CodeConflict
	default:
		return http.StatusInternalServerError, models.CodeInternal
	}
}

// FromError writes the envelope for err. AppErrors expose their message;
// anything else exposes the raw error text.
func FromError(w http.ResponseWriter, err error) {
	status, code := StatusFor(err)

	msg := err.Error()
	var appErr *models.AppError
	if errors.As(err, &appErr) {
		msg = appErr.Message
		if appErr.Code != "" {
			code = appErr.Code
		}
	}
	Error(w, status, code, msg)
}
