// internal/middleware/meta.go
package middleware

import (
	"net"
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RequestMeta copies the request id, client address and user agent into the
// context so audit entries written further down can carry them. It runs after
// chimw.RequestID and chimw.RealIP.
func RequestMeta(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithMeta(r.Context(), audit.RequestMeta{
			RequestID: chimw.GetReqID(r.Context()),
			IPAddress: clientIP(r),
			UserAgent: r.UserAgent(),
		})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func requestID(r *http.Request) string {
	return chimw.GetReqID(r.Context())
}
