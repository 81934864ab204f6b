// internal/model/join_request.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "pending"
	RequestApproved RequestStatus = "approved"
	RequestRejected RequestStatus = "rejected"
)

// JoinRequest is a self-service request to join an organization. Approved and
// rejected are terminal and each is reachable only once from pending.
type JoinRequest struct {
	ID             uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	UserID         uuid.UUID     `gorm:"type:uuid;not null" json:"user_id"`
	OrganizationID uuid.UUID     `gorm:"type:uuid;not null" json:"organization_id"`
	PositionID     *uuid.UUID    `gorm:"type:uuid" json:"position_id"`
	Message        *string       `gorm:"type:text" json:"message"`
	Status         RequestStatus `gorm:"type:text;not null;default:'pending'" json:"status"`
	ReviewedBy     *uuid.UUID    `gorm:"type:uuid" json:"reviewed_by"`
	ReviewedAt     *time.Time    `json:"reviewed_at"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	User     *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Position *Position `gorm:"foreignKey:PositionID" json:"position,omitempty"`
}
