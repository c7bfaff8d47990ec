package room

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=room
type Repository interface {
	CreateRoom(ctx context.Context, r *Room) error
	GetRoom(ctx context.Context, id uuid.UUID) (*Room, error)
	SearchRooms(ctx context.Context, filter SearchFilter) ([]*Room, error)
	// UpdateRoom writes the room and recomputes available beds from the
	// current occupancy. Shrinking total beds below occupancy fails with
	// ErrOccupied.
	UpdateRoom(ctx context.Context, r *Room) error
	// DeleteRoom fails with ErrOccupied while residents are still assigned.
	DeleteRoom(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	RoomNumber  string `json:"room_number" validate:"required,notblank"`
	FloorNumber string `json:"floor_number" validate:"required,notblank"`
	TotalBeds   int    `json:"total_beds" validate:"required,gt=0"`
	Status      Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Room, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	status := params.Status
	if status == "" {
		status = StatusActive
	}

	r := &Room{
		RoomNumber:    strings.TrimSpace(params.RoomNumber),
		FloorNumber:   strings.TrimSpace(params.FloorNumber),
		TotalBeds:     params.TotalBeds,
		AvailableBeds: params.TotalBeds,
		Status:        status,
	}

	if err := s.repo.CreateRoom(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

type UpdateParams struct {
	RoomNumber  *string `json:"room_number" validate:"omitempty,notblank"`
	FloorNumber *string `json:"floor_number" validate:"omitempty,notblank"`
	TotalBeds   *int    `json:"total_beds" validate:"omitempty,gt=0"`
	Status      *Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Room, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	r, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.RoomNumber != nil {
		r.RoomNumber = strings.TrimSpace(*params.RoomNumber)
	}

	if params.FloorNumber != nil {
		r.FloorNumber = strings.TrimSpace(*params.FloorNumber)
	}

	if params.TotalBeds != nil {
		r.TotalBeds = *params.TotalBeds
	}

	if params.Status != nil {
		r.Status = *params.Status
	}

	if err := s.repo.UpdateRoom(ctx, r); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Room, error) {
	return s.repo.GetRoom(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRoom(ctx, id)
}

type SearchFilter struct {
	Query     string
	Paging    bool
	PageIndex int
	PageCount int
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*Room, error) {
	if filter.Paging {
		if filter.PageCount <= 0 {
			filter.PageCount = 10
		}

		if filter.PageIndex < 0 {
			filter.PageIndex = 0
		}
	}

	return s.repo.SearchRooms(ctx, filter)
}
