// internal/model/user.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// User is the relational profile of an identity-provider account. It shares the account id.
// IsActive=false means the account exists but no membership has been approved yet.
type User struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Email        string     `gorm:"type:citext;uniqueIndex;not null" json:"email"`
	FullName     string     `gorm:"type:text;not null" json:"full_name"`
	Phone        *string    `gorm:"type:text" json:"phone"`
	AvatarURL    *string    `gorm:"type:text" json:"avatar_url"`
	IsActive     bool       `gorm:"not null;default:false" json:"is_active"`
	IsSuperAdmin bool       `gorm:"not null;default:false" json:"is_super_admin"`
	LastLogin    *time.Time `json:"last_login"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Memberships []Membership `gorm:"foreignKey:UserID" json:"memberships,omitempty"`
}
