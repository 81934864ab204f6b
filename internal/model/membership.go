// internal/model/membership.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// Membership links a user to an organization. At most one active membership per
// (user, organization) is enforced by a partial unique index.
type Membership struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID  `gorm:"type:uuid;not null" json:"user_id"`
	OrganizationID uuid.UUID  `gorm:"type:uuid;not null" json:"organization_id"`
	PositionID     *uuid.UUID `gorm:"type:uuid" json:"position_id"`
	Role           Role       `gorm:"type:text;not null" json:"role"`
	IsActive       bool       `gorm:"not null;default:true" json:"is_active"`
	StartDate      time.Time  `gorm:"type:date;not null" json:"start_date"`
	EndDate        *time.Time `gorm:"type:date" json:"end_date"`
	CreatedAt      time.Time  `json:"created_at"`

	User         *User         `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Position     *Position     `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}
