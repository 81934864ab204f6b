// internal/handler/catalog.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/service"
)

// CatalogHandler serves the unauthenticated lists used by the sign up screens.
type CatalogHandler struct {
	service *service.CatalogService
}

func NewCatalogHandler(service *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: service}
}

type OrganizationsResponse struct {
	SuccessResponse
	Organizations []*model.Organization `json:"organizations"`
}

type PositionsResponse struct {
	SuccessResponse
	Positions []*model.Position `json:"positions"`
}

type IndustriesResponse struct {
	SuccessResponse
	Industries []*model.Industry `json:"industries"`
}

func (h *CatalogHandler) Organizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.service.Organizations(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load organizations")
		return
	}
	if orgs == nil {
		orgs = []*model.Organization{}
	}
	respondWithJSON(w, http.StatusOK, OrganizationsResponse{SuccessResponse{true}, orgs})
}

func (h *CatalogHandler) Positions(w http.ResponseWriter, r *http.Request) {
	positions, err := h.service.Positions(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load positions")
		return
	}
	if positions == nil {
		positions = []*model.Position{}
	}
	respondWithJSON(w, http.StatusOK, PositionsResponse{SuccessResponse{true}, positions})
}

func (h *CatalogHandler) Industries(w http.ResponseWriter, r *http.Request) {
	industries, err := h.service.Industries(r.Context())
	if err != nil {
		respondWithServiceError(w, r, err, "Could not load industries")
		return
	}
	if industries == nil {
		industries = []*model.Industry{}
	}
	respondWithJSON(w, http.StatusOK, IndustriesResponse{SuccessResponse{true}, industries})
}
