package ports

import (
	"context"
	"time"
)

// AuditRecord is one entry of the append-only audit trail: who did what,
// in which role, and why.
type AuditRecord struct {
	UserID    string
	Role      string
	Action    string
	Reason    string
	Timestamp time.Time
}

// AuditLog is a best-effort sink for audit records. The core appends a record
// after every state-changing operation but never depends on the append
// succeeding: implementations log failures instead of returning them, and
// callers must not treat the sink as transactional with the state change.
type AuditLog interface {
	Append(ctx context.Context, record AuditRecord)
}
