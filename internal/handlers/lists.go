package handlers

import (
	"fmt"
	"net/http"

	"taskflow/internal/services"
	"taskflow/internal/storage"
)

type listRequest struct {
	Name     string `json:"name"`
	Position *int   `json:"position"`
}

// GetBoardLists returns the lists of a board ordered by position
// @Summary List lists
// @Tags lists
// @Produce json
// @Param boardId path int true "Board ID"
// @Success 200 {array} storage.List
// @Router /api/boards/{boardId}/lists [get]
func (h *Handlers) GetBoardLists(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	lists, err := h.services.Lists.ListForBoard(r.Context(), boardID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, lists)
}

// GetList returns a list
// @Summary Get list
// @Tags lists
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} storage.List
// @Failure 404 {object} ErrorResponse "List not found"
// @Router /api/lists/{id} [get]
func (h *Handlers) GetList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.Lists.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// CreateList adds a list to a board. Without a position it is appended.
// @Summary Create list
// @Tags lists
// @Accept json
// @Produce json
// @Param boardId path int true "Board ID"
// @Success 201 {object} storage.List
// @Failure 404 {object} ErrorResponse "Board not found"
// @Router /api/boards/{boardId}/lists [post]
func (h *Handlers) CreateList(w http.ResponseWriter, r *http.Request) {
	boardID, err := pathID(r, "boardId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req listRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	list := &storage.List{Name: req.Name, BoardID: boardID}
	if err := h.services.Lists.Create(r.Context(), list, req.Position); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/lists/%d", list.ID))
	writeJSON(w, http.StatusCreated, list)
}

// UpdateList changes a list
// @Summary Update list
// @Tags lists
// @Accept json
// @Produce json
// @Param id path int true "List ID"
// @Success 200 {object} storage.List
// @Failure 404 {object} ErrorResponse "List not found"
// @Router /api/lists/{id} [put]
func (h *Handlers) UpdateList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd services.ListUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	list, err := h.services.Lists.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// DeleteList removes a list with its cards
// @Summary Delete list
// @Tags lists
// @Param id path int true "List ID"
// @Success 204
// @Router /api/lists/{id} [delete]
func (h *Handlers) DeleteList(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Lists.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
