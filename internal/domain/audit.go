package domain

import (
	"encoding/json"
	"time"
)

// AuditAction identifies the booking mutation being recorded
type AuditAction string

const (
	AuditActionCreate     AuditAction = "create"
	AuditActionReschedule AuditAction = "reschedule"
	AuditActionCancel     AuditAction = "cancel"
)

// AuditRecord is an immutable trace of a booking mutation.
// Required for operational traceability, not for correctness.
type AuditRecord struct {
	ID         int64
	BookingUID string
	Action     AuditAction
	Actor      string // attendee or admin email that performed the mutation
	Payload    json.RawMessage
	CreatedAt  time.Time
}
