package handlers

import (
	"github.com/gorilla/mux"
)

// RegisterRoutes mounts the API on router
func (h *Handlers) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/health", h.HealthCheck).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()

	api.HandleFunc("/users", h.CreateUser).Methods("POST")
	api.HandleFunc("/users/email/{email}", h.GetUserByEmail).Methods("GET")
	api.HandleFunc("/users/{id}", h.GetUser).Methods("GET")

	api.HandleFunc("/workspaces", h.GetWorkspaces).Methods("GET")
	api.HandleFunc("/workspaces", h.CreateWorkspace).Methods("POST")
	api.HandleFunc("/workspaces/{id}", h.GetWorkspace).Methods("GET")
	api.HandleFunc("/workspaces/{id}", h.UpdateWorkspace).Methods("PUT")
	api.HandleFunc("/workspaces/{id}", h.DeleteWorkspace).Methods("DELETE")

	api.HandleFunc("/workspaces/{workspaceId}/boards", h.GetWorkspaceBoards).Methods("GET")
	api.HandleFunc("/workspaces/{workspaceId}/boards", h.CreateBoard).Methods("POST")
	api.HandleFunc("/boards/{id}", h.GetBoard).Methods("GET")
	api.HandleFunc("/boards/{id}", h.UpdateBoard).Methods("PUT")
	api.HandleFunc("/boards/{id}", h.DeleteBoard).Methods("DELETE")

	api.HandleFunc("/boards/{boardId}/lists", h.GetBoardLists).Methods("GET")
	api.HandleFunc("/boards/{boardId}/lists", h.CreateList).Methods("POST")
	api.HandleFunc("/lists/{id}", h.GetList).Methods("GET")
	api.HandleFunc("/lists/{id}", h.UpdateList).Methods("PUT")
	api.HandleFunc("/lists/{id}", h.DeleteList).Methods("DELETE")

	api.HandleFunc("/lists/{listId}/cards", h.GetListCards).Methods("GET")
	api.HandleFunc("/lists/{listId}/cards", h.CreateCard).Methods("POST")
	api.HandleFunc("/cards/{id}", h.GetCard).Methods("GET")
	api.HandleFunc("/cards/{id}", h.UpdateCard).Methods("PUT")
	api.HandleFunc("/cards/{id}", h.DeleteCard).Methods("DELETE")
}
