package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialdesk/internal/service"
)

func (h *Handlers) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.ClientService.ListClients(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, clients, http.StatusOK)
}

func (h *Handlers) GetClient(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	client, err := h.ClientService.GetClient(r.Context(), clientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, client, http.StatusOK)
}

func (h *Handlers) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req service.ClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := h.ClientService.CreateClient(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, client, http.StatusCreated)
}

func (h *Handlers) UpdateClient(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	var req service.ClientRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	client, err := h.ClientService.UpdateClient(r.Context(), clientID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, client, http.StatusOK)
}

// DeleteClient removes the client together with its posts, payments and
// approval links.
func (h *Handlers) DeleteClient(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	if err := h.ClientService.DeleteClient(r.Context(), clientID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "client deleted"}, http.StatusOK)
}

// UploadClientFile stores a profile photo or contract PDF for the client.
// The multipart form carries the file under "file" and the target slot
// under "field".
func (h *Handlers) UploadClientFile(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	r.Body = http.MaxBytesReader(w, r.Body, h.Cfg.MaxUploadSize)
	if err := r.ParseMultipartForm(h.Cfg.MaxUploadSize); err != nil {
		writeError(w, "file is too large or malformed", http.StatusBadRequest)
		return
	}

	field := r.FormValue("field")

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, "failed to read file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	client, err := h.ClientService.AttachFile(r.Context(), clientID, field, header.Filename, file, header.Size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, client, http.StatusOK)
}
