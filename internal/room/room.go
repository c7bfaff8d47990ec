package room

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("room not found")
	ErrOccupied  = errors.New("room still has residents assigned")
	ErrDuplicate = errors.New("room already exists on this floor")
)

// Status marks whether a room accepts assignments.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// Room represents a hostel room. AvailableBeds always equals TotalBeds
// minus the residents currently assigned.
type Room struct {
	ID            uuid.UUID
	RoomNumber    string
	FloorNumber   string
	TotalBeds     int
	AvailableBeds int
	Status        Status
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}
