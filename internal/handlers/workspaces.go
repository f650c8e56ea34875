package handlers

import (
	"fmt"
	"net/http"

	"taskflow/internal/middleware"
	"taskflow/internal/services"
	"taskflow/internal/storage"
)

// Workspace handlers act for the caller named by the gateway

type workspaceRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetWorkspaces returns the caller's workspaces
// @Summary List workspaces
// @Tags workspaces
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Success 200 {array} storage.Workspace
// @Router /api/workspaces [get]
func (h *Handlers) GetWorkspaces(w http.ResponseWriter, r *http.Request) {
	workspaces, err := h.services.Workspaces.ListForUser(r.Context(), middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, workspaces)
}

// GetWorkspace returns one of the caller's workspaces
// @Summary Get workspace
// @Tags workspaces
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param id path int true "Workspace ID"
// @Success 200 {object} storage.Workspace
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /api/workspaces/{id} [get]
func (h *Handlers) GetWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	ws, err := h.services.Workspaces.Get(r.Context(), id, middleware.UserID(r.Context()))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// CreateWorkspace creates a workspace owned by the caller
// @Summary Create workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Success 201 {object} storage.Workspace
// @Failure 400 {object} ErrorResponse "Invalid workspace"
// @Router /api/workspaces [post]
func (h *Handlers) CreateWorkspace(w http.ResponseWriter, r *http.Request) {
	var req workspaceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	ws := &storage.Workspace{Name: req.Name, Description: req.Description}
	if err := h.services.Workspaces.Create(r.Context(), middleware.UserID(r.Context()), ws); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/workspaces/%d", ws.ID))
	writeJSON(w, http.StatusCreated, ws)
}

// UpdateWorkspace changes a workspace the caller owns
// @Summary Update workspace
// @Tags workspaces
// @Accept json
// @Produce json
// @Param X-User-Id header string true "Caller id"
// @Param id path int true "Workspace ID"
// @Success 200 {object} storage.Workspace
// @Failure 403 {object} ErrorResponse "Caller does not own the workspace"
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /api/workspaces/{id} [put]
func (h *Handlers) UpdateWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd services.WorkspaceUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	ws, err := h.services.Workspaces.Update(r.Context(), id, middleware.UserID(r.Context()), upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, ws)
}

// DeleteWorkspace removes a workspace the caller owns, with its boards
// @Summary Delete workspace
// @Tags workspaces
// @Param X-User-Id header string true "Caller id"
// @Param id path int true "Workspace ID"
// @Success 204
// @Failure 403 {object} ErrorResponse "Caller does not own the workspace"
// @Router /api/workspaces/{id} [delete]
func (h *Handlers) DeleteWorkspace(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Workspaces.Delete(r.Context(), id, middleware.UserID(r.Context())); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
