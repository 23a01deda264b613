package handlers

import (
	"net/http"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/services"
	helpers "learndash/internal/utils/helpers"

	"go.uber.org/zap"
)

type LanguageHandler struct {
	svc      *services.LanguageService
	progress *services.ProgressService
}

func NewLanguageHandler(svc *services.LanguageService, progress *services.ProgressService) *LanguageHandler {
	return &LanguageHandler{svc: svc, progress: progress}
}

// List
// @Summary      List languages
// @Description  All languages sorted by name, in short form
// @Tags         languages
// @Produce      json
// @Success      200 {object} map[string]any "success, languages, total"
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /languages [get]
func (h *LanguageHandler) List(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	langs, err := h.svc.List(r.Context())
	if err != nil {
		log.Error("languages: list failed", zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{
		"languages": langs,
		"total":     len(langs),
	})
}

// Get
// @Summary      Language with sections, subsections and progress
// @Description  Creates the language's progress record when it has none yet
// @Tags         languages
// @Produce      json
// @Param        id  path  int  true  "Language ID"
// @Success      200 {object} map[string]models.LanguageView
// @Failure      404 {object} helpers.ErrorResponse
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /languages/{id} [get]
func (h *LanguageHandler) Get(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	id, err := pathID(r, models.MsgLanguageNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	view, err := h.svc.View(r.Context(), id)
	if err != nil {
		log.Warn("languages: view failed", zap.Int("id", id), zap.Error(err))
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"language": view})
}

// Create
// @Summary      Create a language
// @Tags         languages
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateLanguageRequest  true  "Language"
// @Success      200 {object} map[string]any "success, created"
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /languages [post]
func (h *LanguageHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := logger.WithCtx(r.Context())

	var req models.CreateLanguageRequest
	if err := decodeBody(w, r, &req); err != nil {
		log.Warn("languages: invalid body on create")
		helpers.FromError(w, err)
		return
	}

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"created": id})
}

// Delete
// @Summary      Delete a language with its sections, subsections and progress
// @Tags         languages
// @Produce      json
// @Param        id  path  int  true  "Language ID"
// @Success      200 {object} map[string]any "success, deleted"
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /languages/{id} [delete]
func (h *LanguageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgLanguageNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"deleted": id})
}

// GetProgress
// @Summary      Stored progress of a language
// @Tags         progress
// @Produce      json
// @Param        id  path  int  true  "Language ID"
// @Success      200 {object} map[string]models.Progress
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /languages/{id}/progress [get]
func (h *LanguageHandler) GetProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgLanguageNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	p, err := h.progress.Get(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"progress": p})
}

// RecomputeProgress
// @Summary      Recompute a language's progress from its subsections
// @Tags         progress
// @Produce      json
// @Param        id  path  int  true  "Language ID"
// @Success      200 {object} map[string]models.Progress
// @Failure      404 {object} helpers.ErrorResponse
// @Failure      500 {object} helpers.ErrorResponse
// @Router       /languages/{id}/progress [put]
func (h *LanguageHandler) RecomputeProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgLanguageNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	p, err := h.progress.Recompute(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"progress": p})
}
