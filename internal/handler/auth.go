// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
)

type AuthHandler struct {
	service *service.AuthService
}

func NewAuthHandler(service *service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

type LoginResponse struct {
	SuccessResponse
	Token   string            `json:"token"`
	Session *identity.Session `json:"session"`
	User    *model.User       `json:"user"`
}

type MeResponse struct {
	User *model.User `json:"user"`
}

type RecoverRequest struct {
	Email string `json:"email"`
}

type MessageResponse struct {
	SuccessResponse
	Message string `json:"message"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if !decodeJSON(w, r, &input) {
		return
	}

	out, err := h.service.Login(r.Context(), input)
	if err != nil {
		respondWithServiceError(w, r, err, "Login failed")
		return
	}

	respondWithJSON(w, http.StatusOK, LoginResponse{
		SuccessResponse: SuccessResponse{Success: true},
		Token:           out.Session.AccessToken,
		Session:         out.Session,
		User:            out.User,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.Me(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load profile")
		return
	}
	respondWithJSON(w, http.StatusOK, MeResponse{User: user})
}

// Recover always answers the same way so callers cannot probe for accounts.
func (h *AuthHandler) Recover(w http.ResponseWriter, r *http.Request) {
	var req RecoverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		respondWithServiceError(w, r, err, "Could not send recovery email")
		return
	}

	respondWithJSON(w, http.StatusOK, MessageResponse{
		SuccessResponse: SuccessResponse{Success: true},
		Message:         "If the address is registered a recovery link is on its way",
	})
}

func (h *AuthHandler) CompleteRecovery(w http.ResponseWriter, r *http.Request) {
	var input service.CompleteRecoveryInput
	if !decodeJSON(w, r, &input) {
		return
	}

	if err := h.service.CompleteRecovery(r.Context(), input); err != nil {
		respondWithServiceError(w, r, err, "Could not reset password")
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
