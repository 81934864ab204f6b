// internal/repository/account.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dangerclosesec/orgmembers/internal/domain"
	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccountRepositoryIface backs the local identity provider.
type AccountRepositoryIface interface {
	Create(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetRecovery(ctx context.Context, id uuid.UUID, hash string, expiry time.Time) error
	CompleteRecovery(ctx context.Context, id uuid.UUID, passwordHash string) error
}

type AccountRepository struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Create(ctx context.Context, account *model.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailAlreadyExists
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *AccountRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where(query, arg).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to find account: %w", err)
	}
	return &account, nil
}

// Delete removes the account. Deleting a missing account reports ErrAccountNotFound.
func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.Account{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

func (r *AccountRepository) SetRecovery(ctx context.Context, id uuid.UUID, hash string, expiry time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"recovery_hash": hash, "recovery_expiry": expiry})
	if result.Error != nil {
		return fmt.Errorf("failed to store recovery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// CompleteRecovery sets the new password, confirms the email and clears the recovery hash.
func (r *AccountRepository) CompleteRecovery(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).
		Model(&model.Account{}).
		Where("id = ? AND recovery_hash IS NOT NULL", id).
		Updates(map[string]interface{}{
			"password_hash":   passwordHash,
			"email_confirmed": true,
			"recovery_hash":   gorm.Expr("NULL"),
			"recovery_expiry": gorm.Expr("NULL"),
			"updated_at":      time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to complete recovery: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.ErrInvalidToken
	}
	return nil
}
