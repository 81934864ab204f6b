// internal/handler/join_request.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
)

type JoinRequestHandler struct {
	service *service.JoinRequestService
}

func NewJoinRequestHandler(service *service.JoinRequestService) *JoinRequestHandler {
	return &JoinRequestHandler{service: service}
}

// ReviewRequest is the body of approve and reject. A missing id decodes to uuid.Nil.
type ReviewRequest struct {
	RequestID uuid.UUID `json:"requestId"`
}

type ApproveResponse struct {
	SuccessResponse
	User *model.User `json:"user"`
}

type ListRequestsResponse struct {
	Requests []*model.JoinRequest `json:"requests"`
}

func (h *JoinRequestHandler) Approve(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.service.Approve(r.Context(), middleware.CallerID(r.Context()), req.RequestID)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not approve request")
		return
	}

	respondWithJSON(w, http.StatusOK, ApproveResponse{
		SuccessResponse: SuccessResponse{Success: true},
		User:            user,
	})
}

func (h *JoinRequestHandler) Reject(w http.ResponseWriter, r *http.Request) {
	var req ReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.Reject(r.Context(), middleware.CallerID(r.Context()), req.RequestID); err != nil {
		respondWithServiceError(w, r, err, "Could not reject request")
		return
	}

	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}

// List returns the pending requests of the caller's organization.
func (h *JoinRequestHandler) List(w http.ResponseWriter, r *http.Request) {
	requests, err := h.service.ListPending(r.Context(), middleware.CallerID(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err, "Could not list requests")
		return
	}

	respondWithJSON(w, http.StatusOK, ListRequestsResponse{Requests: requests})
}
