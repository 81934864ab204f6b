// internal/repository/stats.go
package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Stats is the platform overview shown to super admins.
type Stats struct {
	Users struct {
		Total    int64 `json:"total"`
		Active   int64 `json:"active"`
		Inactive int64 `json:"inactive"`
	} `json:"users"`
	Organizations struct {
		Total    int64 `json:"total"`
		Active   int64 `json:"active"`
		Inactive int64 `json:"inactive"`
		Recent   int64 `json:"recent"`
	} `json:"organizations"`
	Memberships struct {
		Total   int64 `json:"total"`
		Owners  int64 `json:"owners"`
		Admins  int64 `json:"admins"`
		Members int64 `json:"members"`
	} `json:"memberships"`
	Invitations struct {
		Pending int64 `json:"pending"`
	} `json:"invitations"`
}

// StatsQuery is the single round trip Collect runs. orgctl reuses it over pgx.
const StatsQuery = `
SELECT
	(SELECT count(*) FROM users),
	(SELECT count(*) FROM users WHERE is_active),
	(SELECT count(*) FROM organizations),
	(SELECT count(*) FROM organizations WHERE is_active),
	(SELECT count(*) FROM organizations WHERE created_at >= $1),
	(SELECT count(*) FROM memberships WHERE is_active),
	(SELECT count(*) FROM memberships WHERE is_active AND role = 'owner'),
	(SELECT count(*) FROM memberships WHERE is_active AND role = 'admin'),
	(SELECT count(*) FROM memberships WHERE is_active AND role = 'member'),
	(SELECT count(*) FROM invitation_tokens WHERE status = 'pending')`

// ScanTargets returns pointers in StatsQuery column order. Derived fields are
// filled by Finish.
func (s *Stats) ScanTargets() []interface{} {
	return []interface{}{
		&s.Users.Total,
		&s.Users.Active,
		&s.Organizations.Total,
		&s.Organizations.Active,
		&s.Organizations.Recent,
		&s.Memberships.Total,
		&s.Memberships.Owners,
		&s.Memberships.Admins,
		&s.Memberships.Members,
		&s.Invitations.Pending,
	}
}

// Finish computes the inactive counts.
func (s *Stats) Finish() {
	s.Users.Inactive = s.Users.Total - s.Users.Active
	s.Organizations.Inactive = s.Organizations.Total - s.Organizations.Active
}

type StatsRepositoryIface interface {
	Collect(ctx context.Context, recentSince time.Time) (*Stats, error)
}

type StatsRepository struct {
	db *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

func (r *StatsRepository) Collect(ctx context.Context, recentSince time.Time) (*Stats, error) {
	var stats Stats
	row := r.db.WithContext(ctx).Raw(StatsQuery, recentSince).Row()
	if err := row.Scan(stats.ScanTargets()...); err != nil {
		return nil, fmt.Errorf("collecting stats: %w", err)
	}
	stats.Finish()
	return &stats, nil
}
