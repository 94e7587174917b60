package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"socialdesk/internal/service"
)

func (h *Handlers) ListClientPayments(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	payments, err := h.PaymentService.ListPayments(r.Context(), clientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, payments, http.StatusOK)
}

func (h *Handlers) CreatePayment(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	var req service.PaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.PaymentService.CreatePayment(r.Context(), clientID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, payment, http.StatusCreated)
}

func (h *Handlers) UpdatePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]

	var req service.PaymentRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.Validate.Struct(req); err != nil {
		writeError(w, err.Error(), http.StatusBadRequest)
		return
	}

	payment, err := h.PaymentService.UpdatePayment(r.Context(), paymentID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, payment, http.StatusOK)
}

func (h *Handlers) DeletePayment(w http.ResponseWriter, r *http.Request) {
	paymentID := mux.Vars(r)["id"]

	if err := h.PaymentService.DeletePayment(r.Context(), paymentID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "payment deleted"}, http.StatusOK)
}
