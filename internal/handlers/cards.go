package handlers

import (
	"fmt"
	"net/http"
	"time"

	"taskflow/internal/services"
	"taskflow/internal/storage"
)

type cardRequest struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Position    *int       `json:"position"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// GetListCards returns the cards of a list ordered by position
// @Summary List cards
// @Tags cards
// @Produce json
// @Param listId path int true "List ID"
// @Success 200 {array} storage.Card
// @Router /api/lists/{listId}/cards [get]
func (h *Handlers) GetListCards(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	cards, err := h.services.Cards.ListForList(r.Context(), listID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cards)
}

// GetCard returns a card
// @Summary Get card
// @Tags cards
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} storage.Card
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /api/cards/{id} [get]
func (h *Handlers) GetCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.Cards.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// CreateCard adds a card to a list
// @Summary Create card
// @Tags cards
// @Accept json
// @Produce json
// @Param listId path int true "List ID"
// @Success 201 {object} storage.Card
// @Failure 404 {object} ErrorResponse "List not found"
// @Router /api/lists/{listId}/cards [post]
func (h *Handlers) CreateCard(w http.ResponseWriter, r *http.Request) {
	listID, err := pathID(r, "listId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req cardRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	card := &storage.Card{
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		ListID:      listID,
	}
	if err := h.services.Cards.Create(r.Context(), card, req.Position); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/cards/%d", card.ID))
	writeJSON(w, http.StatusCreated, card)
}

// UpdateCard changes a card; a new listId moves it
// @Summary Update card
// @Tags cards
// @Accept json
// @Produce json
// @Param id path int true "Card ID"
// @Success 200 {object} storage.Card
// @Failure 404 {object} ErrorResponse "Card not found"
// @Router /api/cards/{id} [put]
func (h *Handlers) UpdateCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var upd services.CardUpdate
	if err := decodeJSON(r, &upd); err != nil {
		writeError(w, r, err)
		return
	}

	card, err := h.services.Cards.Update(r.Context(), id, upd)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, card)
}

// DeleteCard removes a card
// @Summary Delete card
// @Tags cards
// @Param id path int true "Card ID"
// @Success 204
// @Router /api/cards/{id} [delete]
func (h *Handlers) DeleteCard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Cards.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
