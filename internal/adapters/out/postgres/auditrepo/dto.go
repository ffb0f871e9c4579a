// Package auditrepo persists the append-only audit trail. Appends are
// best-effort: a failed write is logged and swallowed so the state change
// that produced the record is never failed retroactively.
package auditrepo

import (
	"time"

	"grocery/internal/core/ports"
)

// AuditLogDTO represents one row of the audit trail.
type AuditLogDTO struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"type:varchar(64);not null;index"`
	Role      string    `gorm:"type:varchar(32);not null"`
	Action    string    `gorm:"type:varchar(64);not null;index"`
	Reason    string    `gorm:"type:text"`
	Timestamp time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for audit entries.
func (AuditLogDTO) TableName() string {
	return "audit_logs"
}

func fromRecord(record ports.AuditRecord) AuditLogDTO {
	return AuditLogDTO{
		UserID:    record.UserID,
		Role:      record.Role,
		Action:    record.Action,
		Reason:    record.Reason,
		Timestamp: record.Timestamp,
	}
}
