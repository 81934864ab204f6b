// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type OrganizationSize string

const (
	OrgSizeMicro      OrganizationSize = "1-10"
	OrgSizeSmall      OrganizationSize = "11-50"
	OrgSizeMedium     OrganizationSize = "51-200"
	OrgSizeLarge      OrganizationSize = "201-500"
	OrgSizeEnterprise OrganizationSize = "500+"
)

// Organization is a tenant. IsActive=false soft-disables member access.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Slug      string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	LogoURL   *string   `gorm:"type:text" json:"logo_url"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Details     *OrganizationDetails `gorm:"foreignKey:OrganizationID" json:"details,omitempty"`
	Memberships []Membership         `gorm:"foreignKey:OrganizationID" json:"-"`
}

type OrganizationDetails struct {
	OrganizationID uuid.UUID         `gorm:"type:uuid;primary_key" json:"organization_id"`
	IndustryID     *uuid.UUID        `gorm:"type:uuid" json:"industry_id"`
	LocationID     *uuid.UUID        `gorm:"type:uuid" json:"location_id"`
	Size           *OrganizationSize `gorm:"type:text" json:"size"`
	Website        *string           `gorm:"type:text" json:"website"`
	Phone          *string           `gorm:"type:text" json:"phone"`
	Description    *string           `gorm:"type:text" json:"description"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`

	Industry *Industry `gorm:"foreignKey:IndustryID" json:"industry,omitempty"`
	Location *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`
}

func (OrganizationDetails) TableName() string {
	return "organization_details"
}

type Location struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	City       string    `gorm:"type:text;not null" json:"city"`
	State      *string   `gorm:"type:text" json:"state"`
	Country    string    `gorm:"type:text;not null" json:"country"`
	PostalCode *string   `gorm:"type:text" json:"postal_code"`
	Address    *string   `gorm:"type:text" json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}

type Industry struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Category    *string   `gorm:"type:text" json:"category"`
	Description *string   `gorm:"type:text" json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type PositionLevel string

const (
	LevelJunior    PositionLevel = "junior"
	LevelMid       PositionLevel = "mid"
	LevelSenior    PositionLevel = "senior"
	LevelManager   PositionLevel = "manager"
	LevelDirector  PositionLevel = "director"
	LevelExecutive PositionLevel = "executive"
)

type Position struct {
	ID         uuid.UUID     `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Title      string        `gorm:"type:text;not null" json:"title"`
	Level      PositionLevel `gorm:"type:text;not null" json:"level"`
	Department *string       `gorm:"type:text" json:"department"`
	CreatedAt  time.Time     `json:"created_at"`
}
