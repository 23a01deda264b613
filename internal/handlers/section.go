package handlers

import (
	"net/http"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/services"
	helpers "learndash/internal/utils/helpers"
)

type SectionHandler struct{ svc *services.SectionService }

func NewSectionHandler(s *services.SectionService) *SectionHandler {
	return &SectionHandler{svc: s}
}

// Create
// @Summary      Create a section in a language
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateSectionRequest  true  "Section"
// @Success      200 {object} map[string]any "success, created"
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /sections [post]
func (h *SectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("sections: invalid body on create")
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

// Update
// @Summary      Rename or reorder a section
// @Tags         sections
// @Accept       json
// @Produce      json
// @Param        id    path  int                          true  "Section ID"
// @Param        body  body  models.UpdateSectionRequest  true  "Fields to change"
// @Success      200 {object} map[string]models.Section
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /sections/{id} [patch]
func (h *SectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgSectionNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	var req models.UpdateSectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}

	sec, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"section": sec})
}

// Delete
// @Summary      Delete a section and its subsections
// @Tags         sections
// @Produce      json
// @Param        id  path  int  true  "Section ID"
// @Success      200 {object} map[string]any "success, deleted"
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /sections/{id} [delete]
func (h *SectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgSectionNotFound)
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
