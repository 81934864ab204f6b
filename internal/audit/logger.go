package audit

import (
	"context"
	"log/slog"

	"github.com/dangerclosesec/orgmembers/internal/model"
	"github.com/dangerclosesec/orgmembers/internal/repository"
	"github.com/google/uuid"
)

// Entry is one membership change worth keeping.
type Entry struct {
	UserID    *uuid.UUID
	Action    string
	Table     string
	RecordID  string
	OldValues map[string]interface{}
	NewValues map[string]interface{}
}

// Logger defines the interface for auditing operations
type Logger interface {
	// Record stores an entry. Callers treat failures as non-fatal.
	Record(ctx context.Context, entry Entry) error
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

// Record implements Logger.Record
func (l *NoOpLogger) Record(ctx context.Context, entry Entry) error {
	return nil
}

// RepositoryLogger writes entries to the audit_logs table.
type RepositoryLogger struct {
	repo repository.AuditLogRepositoryIface
}

func NewRepositoryLogger(repo repository.AuditLogRepositoryIface) *RepositoryLogger {
	return &RepositoryLogger{repo: repo}
}

// Record implements Logger.Record
func (l *RepositoryLogger) Record(ctx context.Context, entry Entry) error {
	meta := MetaFrom(ctx)

	log := &model.AuditLog{
		UserID:    entry.UserID,
		Action:    entry.Action,
		Table:     entry.Table,
		OldValues: entry.OldValues,
		NewValues: entry.NewValues,
		RequestID: meta.RequestID,
		IPAddress: meta.IPAddress,
		UserAgent: meta.UserAgent,
	}
	if entry.RecordID != "" {
		log.RecordID = &entry.RecordID
	}

	return l.repo.Create(ctx, log)
}

// Safe records entry and logs a failure instead of returning it.
func Safe(ctx context.Context, l Logger, entry Entry) {
	if l == nil {
		return
	}
	if err := l.Record(ctx, entry); err != nil {
		slog.WarnContext(ctx, "audit write failed",
			"action", entry.Action,
			"table", entry.Table,
			"recordID", entry.RecordID,
			"requestID", MetaFrom(ctx).RequestID,
			"error", err,
		)
	}
}
