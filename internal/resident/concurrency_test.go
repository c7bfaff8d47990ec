package resident_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/resident"
)

// bedRepo is a minimal in-memory Repository that enforces the bed
// invariant the way the store does: the claim is a single guarded
// check-and-decrement, never a read followed by a separate write.
type bedRepo struct {
	mu   sync.Mutex
	beds map[uuid.UUID]int
}

func newBedRepo(rooms map[uuid.UUID]int) *bedRepo {
	return &bedRepo{beds: rooms}
}

func (f *bedRepo) CreateResident(_ context.Context, r *resident.Resident, _ *payment.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if r.Room != nil {
		if f.beds[r.Room.ID] <= 0 {
			return resident.ErrRoomFull
		}

		f.beds[r.Room.ID]--
	}

	r.ID = uuid.New()
	r.CreatedAt = time.Now()

	return nil
}

func (f *bedRepo) GetResident(context.Context, uuid.UUID) (*resident.Resident, error) {
	return nil, resident.ErrNotFound
}

func (f *bedRepo) SearchResidents(context.Context, resident.SearchFilter) ([]*resident.Resident, error) {
	return nil, nil
}

func (f *bedRepo) UpdateResident(context.Context, *resident.Resident, *uuid.UUID, *uuid.UUID) error {
	return nil
}

func (f *bedRepo) DeleteResident(context.Context, uuid.UUID) error { return nil }

func (f *bedRepo) ApplyCollection(context.Context, *resident.Resident, *payment.Payment) error {
	return nil
}

func (f *bedRepo) RecordPayment(context.Context, *payment.Payment) error { return nil }

func (f *bedRepo) PendingPayments(context.Context, uuid.UUID) ([]*payment.Payment, error) {
	return nil, nil
}

func (f *bedRepo) ApplyApproval(context.Context, *resident.Resident, []uuid.UUID) error {
	return nil
}

func TestService_Create_ConcurrentLastBed(t *testing.T) {
	roomID := uuid.New()
	repo := newBedRepo(map[uuid.UUID]int{roomID: 1})
	svc := resident.NewService(repo)

	const attempts = 8

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		full    int
	)

	for i := 0; i < attempts; i++ {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := svc.Create(context.Background(), resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
				RoomID:      &roomID,
			})

			mu.Lock()
			defer mu.Unlock()

			switch err {
			case nil:
				created++
			case resident.ErrRoomFull:
				full++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}

	wg.Wait()

	assert.Equal(t, 1, created, "exactly one create should win the last bed")
	assert.Equal(t, attempts-1, full, "everyone else should see ErrRoomFull")
	require.Equal(t, 0, repo.beds[roomID])
}
