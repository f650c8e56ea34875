package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
	"taskflow/internal/storage"
)

// CreateUser registers a user
// @Summary Create user
// @Tags users
// @Accept json
// @Produce json
// @Param user body storage.User true "User"
// @Success 201 {object} storage.User "Created user"
// @Failure 400 {object} ErrorResponse "Invalid user"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /api/users [post]
func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var user storage.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.Users.Create(r.Context(), &user); err != nil {
		writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/users/"+user.ID)
	writeJSON(w, http.StatusCreated, user)
}

// GetUser returns a user by id
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} storage.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/users/{id} [get]
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.Users.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// GetUserByEmail returns a user by email
// @Summary Get user by email
// @Tags users
// @Produce json
// @Param email path string true "Email"
// @Success 200 {object} storage.User
// @Failure 404 {object} ErrorResponse "User not found"
// @Router /api/users/email/{email} [get]
func (h *Handlers) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.Users.GetByEmail(r.Context(), mux.Vars(r)["email"])
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
