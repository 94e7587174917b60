package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialdesk/internal/service"
)

func (h *Handlers) SaveEvent(w http.ResponseWriter, r *http.Request) {
	var req service.EventRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	event, err := h.AgendaService.SaveEvent(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, event, http.StatusOK)
}

func (h *Handlers) ListEvents(w http.ResponseWriter, r *http.Request) {
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	events, err := h.AgendaService.ListEvents(r.Context(), start, end)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, events, http.StatusOK)
}

func (h *Handlers) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	eventID := mux.Vars(r)["id"]

	if err := h.AgendaService.DeleteEvent(r.Context(), eventID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "event deleted"}, http.StatusOK)
}

func (h *Handlers) CreateIdea(w http.ResponseWriter, r *http.Request) {
	var req service.IdeaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	idea, err := h.AgendaService.CreateIdea(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, idea, http.StatusCreated)
}

func (h *Handlers) ListIdeas(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.AgendaService.ListIdeas(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, ideas, http.StatusOK)
}

func (h *Handlers) UpdateIdea(w http.ResponseWriter, r *http.Request) {
	ideaID := mux.Vars(r)["id"]

	var req service.IdeaRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	idea, err := h.AgendaService.UpdateIdea(r.Context(), ideaID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, idea, http.StatusOK)
}

func (h *Handlers) DeleteIdea(w http.ResponseWriter, r *http.Request) {
	ideaID := mux.Vars(r)["id"]

	if err := h.AgendaService.DeleteIdea(r.Context(), ideaID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "idea deleted"}, http.StatusOK)
}

func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req service.TaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.AgendaService.CreateTask(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, task, http.StatusCreated)
}

func (h *Handlers) ListTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.AgendaService.ListTasks(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, tasks, http.StatusOK)
}

func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	var req service.TaskRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	task, err := h.AgendaService.UpdateTask(r.Context(), taskID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, task, http.StatusOK)
}

func (h *Handlers) ToggleTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	task, err := h.AgendaService.ToggleTask(r.Context(), taskID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, task, http.StatusOK)
}

func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	taskID := mux.Vars(r)["id"]

	if err := h.AgendaService.DeleteTask(r.Context(), taskID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "task deleted"}, http.StatusOK)
}
