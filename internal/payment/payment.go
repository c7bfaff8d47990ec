package payment

import (
	"time"

	"github.com/google/uuid"
)

// Type is the operator-chosen label for a collection. The authoritative
// state transition is driven by the collected amount, not this tag.
type Type string

const (
	TypeFull    Type = "FULL"
	TypePartial Type = "PARTIAL"
)

// Status tracks whether a collection counts toward the resident's due
// amount and the monthly totals yet.
type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
)

// Payment is a single fee collection event.
type Payment struct {
	ID         uuid.UUID
	ResidentID uuid.UUID
	Amount     int64 // Amount in minor currency units
	Type       Type
	Status     Status
	ReceiptURL string
	CreatedAt  time.Time
	ApprovedAt *time.Time
}
