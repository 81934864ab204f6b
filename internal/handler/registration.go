// internal/handler/registration.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/google/uuid"
)

type RegistrationHandler struct {
	service *service.RegistrationService
}

func NewRegistrationHandler(service *service.RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{service: service}
}

type RegisterOwnerResponse struct {
	SuccessResponse
	UserID         uuid.UUID `json:"user_id"`
	OrganizationID uuid.UUID `json:"organization_id"`
}

type RegisterMemberResponse struct {
	SuccessResponse
	UserID uuid.UUID `json:"user_id"`
}

// RegisterOwner creates an account, an organization and its owner membership.
func (h *RegistrationHandler) RegisterOwner(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterOwnerInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.RegisterOwner(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Owner registration failed")
		return
	}

	respondWithJSON(w, http.StatusOK, RegisterOwnerResponse{
		SuccessResponse: SuccessResponse{Success: true},
		UserID:          out.UserID,
		OrganizationID:  out.OrganizationID,
	})
}

// RegisterMember creates an inactive member and files join requests.
func (h *RegistrationHandler) RegisterMember(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterMemberInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.RegisterMember(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Member registration failed")
		return
	}

	respondWithJSON(w, http.StatusOK, RegisterMemberResponse{
		SuccessResponse: SuccessResponse{Success: true},
		UserID:          out.UserID,
	})
}

func (h *RegistrationHandler) RegisterMemberSimple(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterSimpleInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.RegisterMemberSimple(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Member registration failed")
		return
	}

	respondWithJSON(w, http.StatusOK, RegisterMemberResponse{
		SuccessResponse: SuccessResponse{Success: true},
		UserID:          out.UserID,
	})
}
