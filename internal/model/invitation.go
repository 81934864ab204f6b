// internal/model/invitation.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type InvitationStatus string

const (
	InvitationPending  InvitationStatus = "pending"
	InvitationAccepted InvitationStatus = "accepted"
	InvitationExpired  InvitationStatus = "expired"
)

type InvitationToken struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	OrganizationID uuid.UUID        `gorm:"type:uuid;not null" json:"organization_id"`
	InvitedBy      uuid.UUID        `gorm:"type:uuid;not null" json:"invited_by"`
	Email          string           `gorm:"type:citext;not null" json:"email"`
	PositionID     *uuid.UUID       `gorm:"type:uuid" json:"position_id"`
	Token          string           `gorm:"type:text;uniqueIndex;not null" json:"-"`
	Status         InvitationStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ExpiresAt      time.Time        `gorm:"not null" json:"expires_at"`
	AcceptedAt     *time.Time       `json:"accepted_at"`
	CreatedAt      time.Time        `json:"created_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
	Position     *Position     `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}

// Expired reports whether the invitation is past its expiry at now.
func (t *InvitationToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
