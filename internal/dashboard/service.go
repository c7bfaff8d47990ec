package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hostelhq/hostelhq/internal/fee"
	"github.com/hostelhq/hostelhq/internal/resident"
	"github.com/hostelhq/hostelhq/internal/room"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=dashboard
type Repository interface {
	ListResidents(ctx context.Context) ([]*resident.Resident, error)
	ListRooms(ctx context.Context) ([]*room.Room, error)
	// CollectedBetween sums approved collection amounts with an approval
	// timestamp in [from, to).
	CollectedBetween(ctx context.Context, from, to time.Time) (int64, error)
	ListPendingCollections(ctx context.Context) ([]*PendingCollection, error)
}

// PendingCollection is a resident with collections awaiting approval.
type PendingCollection struct {
	Resident      *resident.Resident
	PendingAmount int64
}

// Summary holds the dashboard counters. Every counter is derived from the
// same entities the list views show, via the same classifier.
type Summary struct {
	TotalUsers         int
	PartialUsers       int
	OverdueUsers       int
	AvailableBeds      int
	CollectedThisMonth int64
	PendingList        int
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Summary computes the counters as of now (server clock). The monthly
// total covers the calendar month containing now.
func (s *Service) Summary(ctx context.Context, now time.Time) (*Summary, error) {
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	var (
		residents []*resident.Resident
		rooms     []*room.Room
		collected int64
		pending   []*PendingCollection
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		residents, err = s.repo.ListResidents(gctx)
		return err
	})
	g.Go(func() (err error) {
		rooms, err = s.repo.ListRooms(gctx)
		return err
	})
	g.Go(func() (err error) {
		collected, err = s.repo.CollectedBetween(gctx, monthStart, monthEnd)
		return err
	})
	g.Go(func() (err error) {
		pending, err = s.repo.ListPendingCollections(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sum := &Summary{
		TotalUsers:         len(residents),
		CollectedThisMonth: collected,
		PendingList:        len(pending),
	}

	for _, r := range residents {
		// OVERDUE_PARTIAL counts as overdue, not partial.
		switch r.FeeStatus(now) {
		case fee.StatusPartial:
			sum.PartialUsers++
		case fee.StatusOverdue, fee.StatusOverduePartial:
			sum.OverdueUsers++
		}
	}

	for _, rm := range rooms {
		sum.AvailableBeds += rm.AvailableBeds
	}

	return sum, nil
}

// PartialUsers lists residents whose status is PARTIAL as of now.
func (s *Service) PartialUsers(ctx context.Context, now time.Time) ([]*resident.Resident, error) {
	return s.filterResidents(ctx, now, fee.StatusPartial)
}

// OverdueUsers lists residents who are OVERDUE or OVERDUE_PARTIAL as of now.
func (s *Service) OverdueUsers(ctx context.Context, now time.Time) ([]*resident.Resident, error) {
	return s.filterResidents(ctx, now, fee.StatusOverdue, fee.StatusOverduePartial)
}

func (s *Service) filterResidents(ctx context.Context, now time.Time, statuses ...fee.Status) ([]*resident.Resident, error) {
	residents, err := s.repo.ListResidents(ctx)
	if err != nil {
		return nil, err
	}

	var matched []*resident.Resident

	for _, r := range residents {
		status := r.FeeStatus(now)
		for _, want := range statuses {
			if status == want {
				matched = append(matched, r)
				break
			}
		}
	}

	return matched, nil
}

// AvailableRooms lists active rooms that still have free beds.
func (s *Service) AvailableRooms(ctx context.Context) ([]*room.Room, error) {
	rooms, err := s.repo.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	var available []*room.Room

	for _, r := range rooms {
		if r.Status == room.StatusActive && r.AvailableBeds > 0 {
			available = append(available, r)
		}
	}

	return available, nil
}

func (s *Service) PendingCollections(ctx context.Context) ([]*PendingCollection, error) {
	return s.repo.ListPendingCollections(ctx)
}
