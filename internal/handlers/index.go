package handlers

import (
	"net/http"

	"learndash/internal/models"
	helpers "learndash/internal/utils/helpers"
)

const welcomeText = "Welcome to Programming Learning Dashboard API"

// Index
// @Summary      Welcome text
// @Tags         meta
// @Produce      plain
// @Success      200 {string} string "Welcome to Programming Learning Dashboard API"
// @Router       / [get]
func Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(welcomeText))
}

func NotFound(w http.ResponseWriter, r *http.Request) {
	helpers.Error(w, http.StatusNotFound, models.CodeNotFound, "Resource not found")
}

func MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	helpers.Error(w, http.StatusMethodNotAllowed, "method_not_allowed", "Method not allowed")
}
