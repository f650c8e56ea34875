package handlers

import (
	"fmt"
	"net/http"

	"taskflow/internal/services"
	"taskflow/internal/storage"
)

type boardRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// GetWorkspaceBoards returns the boards of a workspace
// @Summary List boards
// @Tags boards
// @Produce json
// @Param workspaceId path int true "Workspace ID"
// @Success 200 {array} storage.Board
// @Router /api/workspaces/{workspaceId}/boards [get]
func (h *Handlers) GetWorkspaceBoards(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathID(r, "workspaceId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	boards, err := h.services.Boards.ListForWorkspace(r.Context(), workspaceID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, boards)
}

// GetBoard returns a board
// @Summary Get board
// @Tags boards
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} storage.Board
// @Failure 404 {object} ErrorResponse "Board not found"
// @Router /api/boards/{id} [get]
func (h *Handlers) GetBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	board, err := h.services.Boards.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// CreateBoard adds a board to a workspace
// @Summary Create board
// @Tags boards
// @Accept json
// @Produce json
// @Param workspaceId path int true "Workspace ID"
// @Success 201 {object} storage.Board
// @Failure 404 {object} ErrorResponse "Workspace not found"
// @Router /api/workspaces/{workspaceId}/boards [post]
func (h *Handlers) CreateBoard(w http.ResponseWriter, r *http.Request) {
	workspaceID, err := pathID(r, "workspaceId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req boardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	board := &storage.Board{Name: req.Name, Description: req.Description, WorkspaceID: workspaceID}
	if err := h.services.Boards.Create(r.Context(), board); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/boards/%d", board.ID))
	writeJSON(w, http.StatusCreated, board)
}

// UpdateBoard changes a board; a new workspaceId moves it
// @Summary Update board
// @Tags boards
// @Accept json
// @Produce json
// @Param id path int true "Board ID"
// @Success 200 {object} storage.Board
// @Failure 404 {object} ErrorResponse "Board not found"
// @Router /api/boards/{id} [put]
func (h *Handlers) UpdateBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd services.BoardUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	board, err := h.services.Boards.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

// DeleteBoard removes a board with its lists and cards
// @Summary Delete board
// @Tags boards
// @Param id path int true "Board ID"
// @Success 204
// @Router /api/boards/{id} [delete]
func (h *Handlers) DeleteBoard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Boards.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
