// internal/handler/admin.go
package handler

import (
	"net/http"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/dangerclosesec/orgmembers/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

const (
	defaultPageSize = 50
	maxAuditPage    = 1000
)

// AdminHandler serves /api/super-admin. Access is checked by middleware.SuperAdmin.
type AdminHandler struct {
	service *service.AdminService
}

func NewAdminHandler(service *service.AdminService) *AdminHandler {
	return &AdminHandler{service: service}
}

type UsersResponse struct {
	Users  interface{} `json:"users"`
	Total  int64       `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

type AdminOrganizationsResponse struct {
	Organizations interface{} `json:"organizations"`
	Total         int64       `json:"total"`
	Offset        int         `json:"offset"`
	Limit         int         `json:"limit"`
}

type AuditLogsResponse struct {
	Logs   interface{} `json:"logs"`
	Total  int64       `json:"total"`
	Offset int         `json:"offset"`
	Limit  int         `json:"limit"`
}

type SetUserActiveRequest struct {
	IsActive *bool `json:"is_active"`
}

func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Stats(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load statistics")
		return
	}
	respondWithJSON(w, http.StatusOK, stats)
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r, defaultPageSize)

	page, err := h.service.Users(r.Context(), offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load users")
		return
	}
	respondWithJSON(w, http.StatusOK, UsersResponse{page.Items, page.Total, page.Offset, page.Limit})
}

func (h *AdminHandler) Organizations(w http.ResponseWriter, r *http.Request) {
	offset, limit := pagination(r, defaultPageSize)

	page, err := h.service.Organizations(r.Context(), offset, limit)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load organizations")
		return
	}
	respondWithJSON(w, http.StatusOK, AdminOrganizationsResponse{page.Items, page.Total, page.Offset, page.Limit})
}

// AuditLogs filters by action, table, record_id, user_id and an RFC3339
// start_time/end_time range.
func (h *AdminHandler) AuditLogs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.AuditQuery{
		Action:   q.Get("action"),
		Table:    q.Get("table"),
		RecordID: q.Get("record_id"),
	}
	params.Offset, params.Limit = pagination(r, defaultPageSize)
	if params.Limit > maxAuditPage {
		params.Limit = maxAuditPage
	}

	if userID := q.Get("user_id"); userID != "" {
		id, err := uuid.Parse(userID)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid user_id")
			return
		}
		params.UserID = &id
	}

	for name, dst := range map[string]*time.Time{"start_time": &params.StartTime, "end_time": &params.EndTime} {
		raw := q.Get(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondWithError(w, http.StatusBadRequest, "Invalid "+name+", use RFC3339")
			return
		}
		*dst = t
	}

	page, err := h.service.AuditLogs(r.Context(), params)
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load audit logs")
		return
	}
	respondWithJSON(w, http.StatusOK, AuditLogsResponse{page.Items, page.Total, page.Offset, page.Limit})
}

// SetUserActive toggles a user profile on or off.
func (h *AdminHandler) SetUserActive(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid user ID")
		return
	}

	var req SetUserActiveRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.IsActive == nil {
		respondWithError(w, http.StatusBadRequest, "is_active is required")
		return
	}

	var actorID *uuid.UUID
	if !middleware.IsOperator(r.Context()) {
		id := middleware.CallerID(r.Context())
		actorID = &id
	}

	if err := h.service.SetUserActive(r.Context(), actorID, userID, *req.IsActive); err != nil {
		respondWithServiceError(w, r, err, "Could not update user")
		return
	}
	respondWithJSON(w, http.StatusOK, SuccessResponse{Success: true})
}
