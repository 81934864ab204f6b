// internal/handler/router.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/identity"
	"github.com/dangerclosesec/orgmembers/internal/middleware"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

// RouterConfig carries everything MountAPI wires into /api.
type RouterConfig struct {
	Registration *RegistrationHandler
	Invitations  *InvitationHandler
	Requests     *JoinRequestHandler
	Catalog      *CatalogHandler
	Admin        *AdminHandler
	Auth         *AuthHandler

	Provider identity.Provider
	Users    repository.UserRepositoryIface
	Operator *auth.OperatorCredential

	// Limiter guards the anonymous write endpoints. Nil disables it.
	Limiter middleware.Limiter
}

// MountAPI registers every /api route on r.
func MountAPI(r chi.Router, cfg RouterConfig) {
	limit := func(scope string) func(http.Handler) http.Handler {
		if cfg.Limiter == nil {
			return func(next http.Handler) http.Handler { return next }
		}
		return middleware.RateLimit(cfg.Limiter, scope)
	}

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Authenticate(cfg.Provider))

		// Public routes
		r.Get("/organizations/public", cfg.Catalog.Organizations)
		r.Get("/positions/public", cfg.Catalog.Positions)
		r.Get("/industries/public", cfg.Catalog.Industries)

		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))

			r.With(limit("register")).Post("/register/owner", cfg.Registration.RegisterOwner)
			r.With(limit("register")).Post("/register/member", cfg.Registration.RegisterMember)
			r.With(limit("register")).Post("/register/member/simple", cfg.Registration.RegisterMemberSimple)

			r.With(limit("invitations")).Post("/invitations/validate", cfg.Invitations.Validate)
			r.With(limit("invitations")).Post("/invitations/accept", cfg.Invitations.Accept)

			r.With(limit("auth")).Post("/auth/login", cfg.Auth.Login)
			r.With(limit("auth")).Post("/auth/recover", cfg.Auth.Recover)
			r.With(limit("auth")).Post("/auth/recover/complete", cfg.Auth.CompleteRecovery)
		})

		// Session routes
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession)

			r.Get("/auth/me", cfg.Auth.Me)
			r.Get("/invitations", cfg.Invitations.List)
			r.Get("/requests", cfg.Requests.List)

			r.Group(func(r chi.Router) {
				r.Use(chimw.AllowContentType("application/json"))

				r.Post("/invitations/create", cfg.Invitations.Create)
				r.Post("/requests/approve", cfg.Requests.Approve)
				r.Post("/requests/reject", cfg.Requests.Reject)
			})
		})

		r.Route("/super-admin", func(r chi.Router) {
			r.Use(middleware.SuperAdmin(cfg.Users, cfg.Operator))

			r.Get("/stats", cfg.Admin.Stats)
			r.Get("/users", cfg.Admin.Users)
			r.With(chimw.AllowContentType("application/json")).Patch("/users/{id}", cfg.Admin.SetUserActive)
			r.Get("/organizations", cfg.Admin.Organizations)
			r.Get("/audit-logs", cfg.Admin.AuditLogs)
		})
	})
}
