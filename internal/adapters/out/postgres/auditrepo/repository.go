package auditrepo

import (
	"context"
	"log/slog"

	"grocery/internal/core/ports"

	"gorm.io/gorm"
)

// GormAuditLog implements ports.AuditLog on a Postgres table.
type GormAuditLog struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormAuditLog creates a new GORM-backed audit trail.
func NewGormAuditLog(db *gorm.DB, logger *slog.Logger) *GormAuditLog {
	return &GormAuditLog{
		db:     db,
		logger: logger.With("component", "audit_log"),
	}
}

// Append writes one audit record. Failures are logged, never returned.
func (a *GormAuditLog) Append(ctx context.Context, record ports.AuditRecord) {
	dto := fromRecord(record)
	if err := a.db.WithContext(ctx).Create(&dto).Error; err != nil {
		a.logger.Error("failed to append audit record",
			"action", record.Action,
			"user_id", record.UserID,
			"error", err,
		)
	}
}
