package resident

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/fee"
)

var (
	ErrNotFound        = errors.New("resident not found")
	ErrRoomFull        = errors.New("room has no available beds")
	ErrInvalidAmount   = errors.New("invalid collection amount")
	ErrAlreadyApproved = errors.New("pending collections already approved")
)

// Status represents the occupancy state of a resident.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// PaymentChoice is the initial payment option at creation time.
type PaymentChoice string

const (
	PaymentNone    PaymentChoice = "NONE"
	PaymentFull    PaymentChoice = "FULL"
	PaymentPartial PaymentChoice = "PARTIAL"
)

// RoomRef is the room assignment carried on a resident. Number and floor
// are loaded via JOIN for display.
type RoomRef struct {
	ID          uuid.UUID
	RoomNumber  string
	FloorNumber string
}

// Resident represents a hostel occupant tracked for billing and occupancy.
type Resident struct {
	ID          uuid.UUID
	Name        string
	Email       string
	Mobile      string
	MonthlyFee  int64 // Amount in minor currency units
	JoiningDate time.Time
	NextFeeDate *time.Time
	DueAmount   int64
	Status      Status
	ReceiptURL  string
	Room        *RoomRef
	CreatedAt   time.Time
	UpdatedAt   *time.Time
	DeletedAt   *time.Time
}

// FeeStatus classifies the resident's billing snapshot as of today.
func (r *Resident) FeeStatus(today time.Time) fee.Status {
	return fee.Classify(r.DueAmount, r.MonthlyFee, r.NextFeeDate, today)
}

// DelayDays is the informational days-past-due counter.
func (r *Resident) DelayDays(today time.Time) int {
	return fee.DelayDays(r.NextFeeDate, today)
}
