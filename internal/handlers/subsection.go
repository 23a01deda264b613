package handlers

import (
	"net/http"

	"learndash/internal/logger"
	"learndash/internal/models"
	"learndash/internal/services"
	helpers "learndash/internal/utils/helpers"
)

type SubsectionHandler struct{ svc *services.SubsectionService }

func NewSubsectionHandler(s *services.SubsectionService) *SubsectionHandler {
	return &SubsectionHandler{svc: s}
}

// Create
// @Summary      Create a subsection in a section
// @Tags         subsections
// @Accept       json
// @Produce      json
// @Param        body  body  models.CreateSubsectionRequest  true  "Subsection"
// @Success      200 {object} map[string]any "success, created"
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /subsections [post]
func (h *SubsectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateSubsectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		logger.WithCtx(r.Context()).Warn("subsections: invalid body on create")
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

// Get
// @Summary      Subsection with its content
// @Tags         subsections
// @Produce      json
// @Param        id  path  int  true  "Subsection ID"
// @Success      200 {object} map[string]models.Subsection
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /subsections/{id} [get]
func (h *SubsectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgSubsectionNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	sub, err := h.svc.Get(r.Context(), id)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"subsection": sub})
}

// Update
// @Summary      Update a subsection (e.g. mark it completed)
// @Description  Does not recompute progress; call PUT /languages/{id}/progress afterwards
// @Tags         subsections
// @Accept       json
// @Produce      json
// @Param        id    path  int                             true  "Subsection ID"
// @Param        body  body  models.UpdateSubsectionRequest  true  "Fields to change"
// @Success      200 {object} map[string]models.Subsection
// @Failure      400 {object} helpers.ErrorResponse
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /subsections/{id} [patch]
func (h *SubsectionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgSubsectionNotFound)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	var req models.UpdateSubsectionRequest
	if err := decodeBody(w, r, &req); err != nil {
		helpers.FromError(w, err)
		return
	}

	sub, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		helpers.FromError(w, err)
		return
	}

	helpers.JSON(w, http.StatusOK, map[string]any{"subsection": sub})
}

// Delete
// @Summary      Delete a subsection
// @Tags         subsections
// @Produce      json
// @Param        id  path  int  true  "Subsection ID"
// @Success      200 {object} map[string]any "success, deleted"
// @Failure      404 {object} helpers.ErrorResponse
// @Router       /subsections/{id} [delete]
func (h *SubsectionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, models.MsgSubsectionNotFound)
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
