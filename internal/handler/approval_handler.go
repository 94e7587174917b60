package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"

	"github.com/gorilla/mux"
)

// ApprovalLinkResponse is the operator-side view of an issued link,
// including the ready-to-share URL.
type ApprovalLinkResponse struct {
	LinkID    string `json:"linkId"`
	ClientID  string `json:"clientId"`
	ShareURL  string `json:"shareUrl"`
	ExpiresAt string `json:"expiresAt"`
}

func (h *Handlers) CreateApprovalLink(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	link, shareURL, err := h.ApprovalService.IssueLink(r.Context(), clientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, ApprovalLinkResponse{
		LinkID:    link.LinkID,
		ClientID:  link.ClientID,
		ShareURL:  shareURL,
		ExpiresAt: link.ExpiresAt.Format("2006-01-02T15:04:05Z07:00"),
	}, http.StatusCreated)
}

func (h *Handlers) ListApprovalLinks(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	links, err := h.ApprovalService.ListLinks(r.Context(), clientID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, links, http.StatusOK)
}

func (h *Handlers) RevokeApprovalLink(w http.ResponseWriter, r *http.Request) {
	linkID := mux.Vars(r)["id"]

	if err := h.ApprovalService.RevokeLink(r.Context(), linkID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "approval link revoked"}, http.StatusOK)
}

// approvalToken extracts the bearer token from the query string and applies
// the per token+IP rate limit. Returns false when the request was already
// answered.
func (h *Handlers) approvalToken(w http.ResponseWriter, r *http.Request) (string, bool) {
	token := r.URL.Query().Get("token")
	if token == "" {
		writeError(w, "token is required", http.StatusBadRequest)
		return "", false
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		ip = r.RemoteAddr
	}

	if !h.Limiter.Allow(r.Context(), "approval:"+token+":"+ip) {
		writeError(w, "too many requests", http.StatusTooManyRequests)
		return "", false
	}

	return token, true
}

// GetApprovalPage is the public landing: client info plus the posts waiting
// for a decision.
func (h *Handlers) GetApprovalPage(w http.ResponseWriter, r *http.Request) {
	token, ok := h.approvalToken(w, r)
	if !ok {
		return
	}

	client, posts, err := h.ApprovalService.GetPendingPosts(r.Context(), token)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, map[string]interface{}{
		"client": client,
		"posts":  posts,
	}, http.StatusOK)
}

func (h *Handlers) ApprovePost(w http.ResponseWriter, r *http.Request) {
	token, ok := h.approvalToken(w, r)
	if !ok {
		return
	}
	postID := mux.Vars(r)["id"]

	if err := h.ApprovalService.Approve(r.Context(), token, postID); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "post approved"}, http.StatusOK)
}

func (h *Handlers) RejectPost(w http.ResponseWriter, r *http.Request) {
	token, ok := h.approvalToken(w, r)
	if !ok {
		return
	}
	postID := mux.Vars(r)["id"]

	var req struct {
		Reason string `json:"reason"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.ApprovalService.Reject(r.Context(), token, postID, req.Reason); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "post rejected"}, http.StatusOK)
}

func (h *Handlers) RequestBoost(w http.ResponseWriter, r *http.Request) {
	token, ok := h.approvalToken(w, r)
	if !ok {
		return
	}
	postID := mux.Vars(r)["id"]

	var req struct {
		Notes string `json:"notes"`
	}

	// The body is optional for boost requests.
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.ApprovalService.RequestBoost(r.Context(), token, postID, req.Notes); err != nil {
		writeServiceError(w, err)
		return
	}

	writeSuccess(w, MessageResponse{Message: "boost requested"}, http.StatusOK)
}
