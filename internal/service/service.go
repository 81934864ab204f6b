// internal/service/service.go
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/dangerclosesec/orgmembers/internal/audit"
	"github.com/dangerclosesec/orgmembers/internal/auth"
	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/dangerclosesec/orgmembers/internal/saga"
	"github.com/go-playground/validator/v10"
)

// Repositories groups the stores used by the membership services. Services
// only touch the fields they need; tests may leave the rest nil.
type Repositories struct {
	Users         repository.UserRepositoryIface
	Organizations repository.OrganizationRepositoryIface
	Memberships   repository.MembershipRepositoryIface
	JoinRequests  repository.JoinRequestRepositoryIface
	Invitations   repository.InvitationRepositoryIface
	Catalog       repository.CatalogRepositoryIface
	AuditLogs     repository.AuditLogRepositoryIface
	Stats         repository.StatsRepositoryIface
}

var phonePattern = regexp.MustCompile(`^[0-9]{10}$`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// validationError turns validator output into a domain validation error
// naming the first offending field.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}

	fe := verrs[0]
	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Errorf("%w: %s is required", domain.ErrMissingFields, fe.Field())
	case "email":
		return fmt.Errorf("%w: %s must be a valid email", domain.ErrInvalidInput, fe.Field())
	case "phone":
		return fmt.Errorf("%w: %s must have 10 digits", domain.ErrInvalidInput, fe.Field())
	case "oneof":
		return fmt.Errorf("%w: %s must be one of %s", domain.ErrInvalidInput, fe.Field(), fe.Param())
	case "url":
		return fmt.Errorf("%w: %s must be a URL", domain.ErrInvalidInput, fe.Field())
	case "min":
		return fmt.Errorf("%w: %s needs at least %s", domain.ErrInvalidInput, fe.Field(), fe.Param())
	}
	return fmt.Errorf("%w: %s is invalid", domain.ErrInvalidInput, fe.Field())
}

func checkPassword(password string) error {
	if reason := auth.CheckPasswordPolicy(password); reason != "" {
		return fmt.Errorf("%w: %s", domain.ErrPasswordTooWeak, reason)
	}
	return nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func normalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// generateToken returns 32 random bytes hex encoded.
func generateToken() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generating token: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// runSaga executes sg and records every compensation it ran in the audit log.
func runSaga(ctx context.Context, sg *saga.Saga, auditLog audit.Logger) error {
	err := sg.Run(ctx)

	var stepErr *saga.StepError
	if errors.As(err, &stepErr) {
		ctx = context.WithoutCancel(ctx)
		for _, c := range stepErr.Compensations {
			outcome := "compensated"
			if c.Err != nil {
				outcome = "failed"
			}
			audit.Safe(ctx, auditLog, audit.Entry{
				Action:   model.ActionCompensation,
				Table:    "sagas",
				RecordID: sg.Name(),
				NewValues: map[string]interface{}{
					"failed_step":      stepErr.Step,
					"compensated_step": c.Step,
					"outcome":          outcome,
				},
			})
		}
	}
	return err
}
