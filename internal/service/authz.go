// internal/service/authz.go
package service

import (
	"context"
	"errors"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
)

// requireOwner returns the caller's active owner membership. Every mutating
// owner operation starts here; the organization it returns scopes the rest
// of the operation.
func requireOwner(ctx context.Context, memberships repository.MembershipRepositoryIface, userID uuid.UUID) (*model.Membership, error) {
	if userID == uuid.Nil {
		return nil, domain.ErrUnauthenticated
	}

	owner, err := memberships.FindOwnerByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrMembershipNotFound) {
			return nil, domain.ErrNotOwner
		}
		return nil, err
	}
	return owner, nil
}
