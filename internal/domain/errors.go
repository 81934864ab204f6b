// internal/domain/errors.go
package domain

import (
	"errors"
	"net/http"
)

// Kind classifies an error for transport. Every sentinel below wraps exactly one kind.
type Kind struct {
	name   string
	status int
}

func (k *Kind) Error() string { return k.name }

// Status returns the HTTP status code for the kind.
func (k *Kind) Status() int { return k.status }

var (
	ErrValidation     = &Kind{"validation error", http.StatusBadRequest}
	ErrAuthentication = &Kind{"authentication error", http.StatusUnauthorized}
	ErrAuthorization  = &Kind{"authorization error", http.StatusForbidden}
	ErrNotFound       = &Kind{"not found", http.StatusNotFound}
	ErrConflict       = &Kind{"conflict", http.StatusConflict}
	ErrExpired        = &Kind{"expired", http.StatusGone}
	ErrDependency     = &Kind{"dependency failure", http.StatusInternalServerError}
)

// kinded pairs a message with its taxonomy kind so errors.Is matches both.
type kinded struct {
	msg  string
	kind *Kind
}

func (e *kinded) Error() string { return e.msg }
func (e *kinded) Unwrap() error { return e.kind }

func newErr(kind *Kind, msg string) error {
	return &kinded{msg: msg, kind: kind}
}

var (
	// General errors
	ErrInvalidInput     = newErr(ErrValidation, "invalid input")
	ErrMissingFields    = newErr(ErrValidation, "missing required fields")
	ErrUnknownReference = newErr(ErrValidation, "referenced record does not exist")

	// Session errors
	ErrUnauthenticated    = newErr(ErrAuthentication, "not authenticated")
	ErrInvalidCredentials = newErr(ErrAuthentication, "invalid credentials")
	ErrInvalidToken       = newErr(ErrAuthentication, "invalid token")

	// Permission errors
	ErrNotOwner      = newErr(ErrAuthorization, "owner role required")
	ErrNotSuperAdmin = newErr(ErrAuthorization, "super admin required")
	ErrEmailMismatch = newErr(ErrAuthorization, "email does not match invitation")

	// Account and profile errors
	ErrAccountNotFound    = newErr(ErrNotFound, "account not found")
	ErrUserNotFound       = newErr(ErrNotFound, "user not found")
	ErrEmailAlreadyExists = newErr(ErrConflict, "email already exists")
	ErrPasswordTooWeak    = newErr(ErrValidation, "password too weak")

	// Organization errors
	ErrOrganizationNotFound = newErr(ErrNotFound, "organization not found")
	ErrSlugTaken            = newErr(ErrConflict, "organization slug already taken")
	ErrEmptySlug            = newErr(ErrValidation, "organization name produces an empty slug")

	// Membership errors
	ErrMembershipNotFound = newErr(ErrNotFound, "membership not found")
	ErrAlreadyMember      = newErr(ErrConflict, "user already has an active membership in this organization")

	// Join request errors
	ErrRequestNotFound = newErr(ErrNotFound, "join request not found")

	// Invitation errors
	ErrInvitationNotFound = newErr(ErrNotFound, "invitation not found")
	ErrInvitationExpired  = newErr(ErrExpired, "invitation expired")

	// Audit errors
	ErrAuditLogNotFound = newErr(ErrNotFound, "audit log not found")
)

// StatusCode maps any error onto the taxonomy. Unclassified errors are dependency failures.
func StatusCode(err error) int {
	var kind *Kind
	if errors.As(err, &kind) {
		return kind.Status()
	}
	return http.StatusInternalServerError
}
