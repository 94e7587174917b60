package handlers

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint. The /approval subtree is public and
// guarded only by the bearer token plus the rate limiter; everything under
// /api except auth requires a JWT (enforced by the auth middleware).
func (h *Handlers) NewRouter() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	// Public approval surface.
	r.HandleFunc("/approval", h.GetApprovalPage).Methods(http.MethodGet)
	r.HandleFunc("/approval/posts/{id}/approve", h.ApprovePost).Methods(http.MethodPost)
	r.HandleFunc("/approval/posts/{id}/reject", h.RejectPost).Methods(http.MethodPost)
	r.HandleFunc("/approval/posts/{id}/boost", h.RequestBoost).Methods(http.MethodPost)

	api := r.PathPrefix("/api").Subrouter()

	api.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", h.RefreshToken).Methods(http.MethodPost)
	api.HandleFunc("/me", h.GetCurrentUser).Methods(http.MethodGet)

	api.HandleFunc("/dashboard", h.Dashboard).Methods(http.MethodGet)

	api.HandleFunc("/clients", h.ListClients).Methods(http.MethodGet)
	api.HandleFunc("/clients", h.CreateClient).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", h.GetClient).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", h.UpdateClient).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}", h.DeleteClient).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/files", h.UploadClientFile).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/payments", h.ListClientPayments).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/payments", h.CreatePayment).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}/approval-links", h.ListApprovalLinks).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}/approval-links", h.CreateApprovalLink).Methods(http.MethodPost)

	api.HandleFunc("/payments/{id}", h.UpdatePayment).Methods(http.MethodPut)
	api.HandleFunc("/payments/{id}", h.DeletePayment).Methods(http.MethodDelete)

	api.HandleFunc("/approval-links/{id}", h.RevokeApprovalLink).Methods(http.MethodDelete)

	api.HandleFunc("/posts", h.ListPosts).Methods(http.MethodGet)
	api.HandleFunc("/posts", h.CreatePost).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}", h.GetPost).Methods(http.MethodGet)
	api.HandleFunc("/posts/{id}", h.UpdatePost).Methods(http.MethodPut)
	api.HandleFunc("/posts/{id}", h.DeletePost).Methods(http.MethodDelete)
	api.HandleFunc("/posts/{id}/status", h.MovePostStatus).Methods(http.MethodPatch)
	api.HandleFunc("/posts/{id}/send-for-approval", h.SendForApproval).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/boost-processed", h.MarkBoostProcessed).Methods(http.MethodPost)
	api.HandleFunc("/posts/{id}/media", h.UploadPostMedia).Methods(http.MethodPost)

	api.HandleFunc("/events", h.SaveEvent).Methods(http.MethodPost)
	api.HandleFunc("/events", h.ListEvents).Methods(http.MethodGet)
	api.HandleFunc("/events/{id}", h.DeleteEvent).Methods(http.MethodDelete)

	api.HandleFunc("/ideas", h.CreateIdea).Methods(http.MethodPost)
	api.HandleFunc("/ideas", h.ListIdeas).Methods(http.MethodGet)
	api.HandleFunc("/ideas/{id}", h.UpdateIdea).Methods(http.MethodPut)
	api.HandleFunc("/ideas/{id}", h.DeleteIdea).Methods(http.MethodDelete)

	api.HandleFunc("/tasks", h.CreateTask).Methods(http.MethodPost)
	api.HandleFunc("/tasks", h.ListTasks).Methods(http.MethodGet)
	api.HandleFunc("/tasks/{id}", h.UpdateTask).Methods(http.MethodPut)
	api.HandleFunc("/tasks/{id}/toggle", h.ToggleTask).Methods(http.MethodPatch)
	api.HandleFunc("/tasks/{id}", h.DeleteTask).Methods(http.MethodDelete)

	return r
}
