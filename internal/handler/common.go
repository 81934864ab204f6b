// internal/handler/common.go
package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/saga"
	chmw "github.com/go-chi/chi/v5/middleware"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

type ErrorResponse struct {
	Error string `json:"error"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// respondWithError sends an error response with a message
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	// Sets content type header
	w.Header().Set("Content-Type", "application/json")

	// Sets the HTTP status code
	w.WriteHeader(code)

	// Encodes the response
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

// respondWithServiceError maps err onto the error taxonomy. Client errors
// carry the domain message; server errors are logged and answered with
// fallback so internals never leak.
func respondWithServiceError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	status := domain.StatusCode(err)
	if status >= http.StatusInternalServerError {
		attrs := []any{"error", err, "requestID", chmw.GetReqID(r.Context())}
		var stepErr *saga.StepError
		if errors.As(err, &stepErr) {
			attrs = append(attrs, "saga", stepErr.Saga, "step", stepErr.Step, "compensationFailed", stepErr.CompensationFailed())
		}
		slog.ErrorContext(r.Context(), fallback, attrs...)
		respondWithError(w, status, fallback)
		return
	}

	var stepErr *saga.StepError
	if errors.As(err, &stepErr) {
		err = stepErr.Err
	}
	respondWithError(w, status, err.Error())
}

// decodeJSON reads the request body into dst. It writes the 400 itself and
// reports false when the body is unusable.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return false
	}
	return true
}

// pagination reads offset and limit query parameters, falling back to the
// given default limit.
func pagination(r *http.Request, defaultLimit int) (int, int) {
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit <= 0 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return offset, limit
}
