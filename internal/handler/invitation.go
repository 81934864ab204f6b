// internal/handler/invitation.go
package handler

import (
	"net/http"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
)

type InvitationHandler struct {
	service *service.InvitationService
}

func NewInvitationHandler(service *service.InvitationService) *InvitationHandler {
	return &InvitationHandler{service: service}
}

type CreateInvitationResponse struct {
	SuccessResponse
	InvitationLink string    `json:"invitation_link"`
	ExpiresAt      time.Time `json:"expires_at"`
}

type ValidateInvitationRequest struct {
	Token string `json:"token"`
}

type ValidateInvitationResponse struct {
	Valid      bool                       `json:"valid"`
	Invitation *service.InvitationSummary `json:"invitation"`
}

type AcceptInvitationResponse struct {
	SuccessResponse
	UserID        uuid.UUID `json:"user_id"`
	RequiresLogin bool      `json:"requires_login"`
}

type ListInvitationsResponse struct {
	Invitations []*model.InvitationToken `json:"invitations"`
}

// Create issues an invitation for the caller's organization. Owners only.
func (h *InvitationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateInvitationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.Create(r.Context(), middleware.CallerID(r.Context()), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not create invitation")
		return
	}

	respondWithJSON(w, http.StatusOK, CreateInvitationResponse{
		SuccessResponse: SuccessResponse{Success: true},
		InvitationLink:  out.InvitationLink,
		ExpiresAt:       out.ExpiresAt,
	})
}

func (h *InvitationHandler) Validate(w http.ResponseWriter, r *http.Request) {
	var req ValidateInvitationRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	summary, err := h.service.Validate(r.Context(), req.Token)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not validate invitation")
		return
	}

	respondWithJSON(w, http.StatusOK, ValidateInvitationResponse{Valid: true, Invitation: summary})
}

// Accept redeems an invitation. Anonymous callers must send user_data.
func (h *InvitationHandler) Accept(w http.ResponseWriter, r *http.Request) {
	var input service.AcceptInvitationInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.Accept(r.Context(), middleware.SessionFrom(r.Context()), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not accept invitation")
		return
	}

	respondWithJSON(w, http.StatusOK, AcceptInvitationResponse{
		SuccessResponse: SuccessResponse{Success: true},
		UserID:          out.UserID,
		RequiresLogin:   out.RequiresLogin,
	})
}

func (h *InvitationHandler) List(w http.ResponseWriter, r *http.Request) {
	invitations, err := h.service.List(r.Context(), middleware.CallerID(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err, "Could not list invitations")
		return
	}

	respondWithJSON(w, http.StatusOK, ListInvitationsResponse{Invitations: invitations})
}
