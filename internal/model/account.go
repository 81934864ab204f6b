// internal/model/account.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// Account is the credential record kept by the local identity provider.
type Account struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Email          string     `gorm:"type:citext;uniqueIndex;not null"`
	PasswordHash   *string    `gorm:"type:text"`
	FullName       string     `gorm:"type:text"`
	EmailConfirmed bool       `gorm:"not null;default:false"`
	RecoveryHash   *string    `gorm:"type:text"`
	RecoveryExpiry *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
