package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

// AuditLog records a committed or compensated membership change.
type AuditLog struct {
	ID        uuid.UUID  `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	UserID    *uuid.UUID `json:"user_id" gorm:"type:uuid"`
	Action    string     `json:"action" gorm:"not null"`
	Table     string     `json:"table_name" gorm:"column:table_name;not null"`
	RecordID  *string    `json:"record_id"`
	OldValues JSONMap    `json:"old_values" gorm:"type:jsonb"`
	NewValues JSONMap    `json:"new_values" gorm:"type:jsonb"`
	RequestID string     `json:"request_id"`
	IPAddress string     `json:"ip_address"`
	UserAgent string     `json:"user_agent"`
	CreatedAt time.Time  `json:"created_at" gorm:"default:CURRENT_TIMESTAMP"`
}

// TableName specifies the table name for AuditLog
func (AuditLog) TableName() string {
	return "audit_logs"
}

// JSONMap represents a generic map stored as JSONB in the database
type JSONMap map[string]interface{}

// Value implements the driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements the sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = make(JSONMap)
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("type assertion failed: failed to decode JSONB")
	}

	return json.Unmarshal(bytes, m)
}

// Audit actions
const (
	ActionOwnerRegistered    = "owner_registered"
	ActionMemberRegistered   = "member_registered"
	ActionInvitationCreated  = "invitation_created"
	ActionInvitationExpired  = "invitation_expired"
	ActionInvitationAccepted = "invitation_accepted"
	ActionRequestApproved    = "request_approved"
	ActionRequestRejected    = "request_rejected"
	ActionUserStatusChanged  = "user_status_changed"
	ActionCompensation       = "compensation"
)
