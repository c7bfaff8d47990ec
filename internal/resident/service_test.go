package resident_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hostelhq/hostelhq/internal/fee"
	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/resident"
	"github.com/hostelhq/hostelhq/internal/validate"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestService_Create(t *testing.T) {
	joining := date(2025, time.March, 10)

	type testCase struct {
		name        string
		params      resident.CreateParams
		setupMock   func(m *resident.MockRepository)
		wantDue     int64
		wantInitial *payment.Payment
		wantErr     bool
		wantField   string
	}

	tests := []testCase{
		{
			name: "NoPaymentOwesFullMonth",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: joining,
				PaymentType: resident.PaymentNone,
			},
			setupMock: func(m *resident.MockRepository) {
				m.EXPECT().
					CreateResident(gomock.Any(), gomock.Any(), nil).
					DoAndReturn(func(_ context.Context, r *resident.Resident, _ *payment.Payment) error {
						r.ID = uuid.New()
						r.CreatedAt = time.Now()
						return nil
					})
			},
			wantDue: 5000,
		},
		{
			name: "FullPaymentStartsPaidUp",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: joining,
				PaymentType: resident.PaymentFull,
			},
			setupMock: func(m *resident.MockRepository) {
				m.EXPECT().
					CreateResident(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *resident.Resident, initial *payment.Payment) error {
						require.NotNil(t, initial)
						assert.Equal(t, int64(5000), initial.Amount)
						assert.Equal(t, payment.TypeFull, initial.Type)
						assert.Equal(t, payment.StatusApproved, initial.Status)
						r.ID = uuid.New()
						return nil
					})
			},
			wantDue: 0,
		},
		{
			name: "PartialPaymentOwesRemainder",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: joining,
				PaymentType: resident.PaymentPartial,
				PaidAmount:  3000,
			},
			setupMock: func(m *resident.MockRepository) {
				m.EXPECT().
					CreateResident(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r *resident.Resident, initial *payment.Payment) error {
						require.NotNil(t, initial)
						assert.Equal(t, int64(3000), initial.Amount)
						assert.Equal(t, payment.TypePartial, initial.Type)
						r.ID = uuid.New()
						return nil
					})
			},
			wantDue: 2000,
		},
		{
			name: "PartialPaymentOfZeroRejected",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: joining,
				PaymentType: resident.PaymentPartial,
				PaidAmount:  0,
			},
			wantErr:   true,
			wantField: "paid_amount",
		},
		{
			name: "PartialPaymentAtFullFeeRejected",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  5000,
				JoiningDate: joining,
				PaymentType: resident.PaymentPartial,
				PaidAmount:  5000,
			},
			wantErr:   true,
			wantField: "paid_amount",
		},
		{
			name: "BlankNameRejected",
			params: resident.CreateParams{
				Name:        "   ",
				MonthlyFee:  5000,
				JoiningDate: joining,
			},
			wantErr:   true,
			wantField: "user_name",
		},
		{
			name: "NonPositiveFeeRejected",
			params: resident.CreateParams{
				Name:        "Asha Verma",
				MonthlyFee:  0,
				JoiningDate: joining,
			},
			wantErr:   true,
			wantField: "monthly_fee",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := resident.NewMockRepository(ctrl)
			if tt.setupMock != nil {
				tt.setupMock(repo)
			}

			svc := resident.NewService(repo)
			got, err := svc.Create(context.Background(), tt.params)

			if tt.wantErr {
				require.Error(t, err)

				var verr *validate.Error
				require.ErrorAs(t, err, &verr)
				require.NotEmpty(t, verr.Fields)
				assert.Equal(t, tt.wantField, verr.Fields[0].Field)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, got.DueAmount)

			require.NotNil(t, got.NextFeeDate)
			assert.Equal(t, date(2025, time.April, 10), *got.NextFeeDate)
		})
	}
}

func TestService_Create_RoomAssignment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roomID := uuid.New()
	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateResident(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, r *resident.Resident, _ *payment.Payment) error {
			require.NotNil(t, r.Room)
			assert.Equal(t, roomID, r.Room.ID)
			return nil
		})

	svc := resident.NewService(repo)

	_, err := svc.Create(context.Background(), resident.CreateParams{
		Name:        "Asha Verma",
		MonthlyFee:  5000,
		JoiningDate: date(2025, time.March, 10),
		RoomID:      &roomID,
	})
	require.NoError(t, err)
}

func TestService_Create_RoomFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roomID := uuid.New()
	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateResident(gomock.Any(), gomock.Any(), nil).
		Return(resident.ErrRoomFull)

	svc := resident.NewService(repo)

	_, err := svc.Create(context.Background(), resident.CreateParams{
		Name:        "Asha Verma",
		MonthlyFee:  5000,
		JoiningDate: date(2025, time.March, 10),
		RoomID:      &roomID,
	})
	assert.ErrorIs(t, err, resident.ErrRoomFull)
}

func TestService_Update_RoomMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	oldRoom := uuid.New()
	newRoom := uuid.New()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		GetResident(gomock.Any(), id).
		Return(&resident.Resident{
			ID:         id,
			Name:       "Asha Verma",
			MonthlyFee: 5000,
			Room:       &resident.RoomRef{ID: oldRoom},
		}, nil)
	repo.EXPECT().
		UpdateResident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *resident.Resident, freed, claimed *uuid.UUID) error {
			require.NotNil(t, freed)
			require.NotNil(t, claimed)
			assert.Equal(t, oldRoom, *freed)
			assert.Equal(t, newRoom, *claimed)
			require.NotNil(t, r.Room)
			assert.Equal(t, newRoom, r.Room.ID)
			return nil
		})

	svc := resident.NewService(repo)

	got, err := svc.Update(context.Background(), id, resident.UpdateParams{RoomID: &newRoom})
	require.NoError(t, err)
	assert.Equal(t, newRoom, got.Room.ID)
}

func TestService_Update_ClearRoom(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	oldRoom := uuid.New()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		GetResident(gomock.Any(), id).
		Return(&resident.Resident{
			ID:         id,
			Name:       "Asha Verma",
			MonthlyFee: 5000,
			Room:       &resident.RoomRef{ID: oldRoom},
		}, nil)
	repo.EXPECT().
		UpdateResident(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *resident.Resident, freed, claimed *uuid.UUID) error {
			require.NotNil(t, freed)
			assert.Equal(t, oldRoom, *freed)
			assert.Nil(t, claimed)
			assert.Nil(t, r.Room)
			return nil
		})

	svc := resident.NewService(repo)

	clear := uuid.Nil

	got, err := svc.Update(context.Background(), id, resident.UpdateParams{RoomID: &clear})
	require.NoError(t, err)
	assert.Nil(t, got.Room)
}

func TestService_Update_SameRoomNoMove(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	roomID := uuid.New()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		GetResident(gomock.Any(), id).
		Return(&resident.Resident{
			ID:         id,
			Name:       "Asha Verma",
			MonthlyFee: 5000,
			Room:       &resident.RoomRef{ID: roomID},
		}, nil)
	repo.EXPECT().
		UpdateResident(gomock.Any(), gomock.Any(), nil, nil).
		Return(nil)

	svc := resident.NewService(repo)

	_, err := svc.Update(context.Background(), id, resident.UpdateParams{RoomID: &roomID})
	require.NoError(t, err)
}

func TestService_CollectFee(t *testing.T) {
	id := uuid.New()

	baseResident := func() *resident.Resident {
		return &resident.Resident{
			ID:          id,
			Name:        "Asha Verma",
			MonthlyFee:  5000,
			DueAmount:   5000,
			NextFeeDate: datePtr(2025, time.June, 1),
		}
	}

	type testCase struct {
		name      string
		params    resident.CollectParams
		due       int64
		setupMock func(m *resident.MockRepository, r *resident.Resident)
		wantDue   int64
		wantNext  time.Time
		wantErr   error
	}

	tests := []testCase{
		{
			name:   "ExactDueClearsAndAdvancesCycle",
			params: resident.CollectParams{Amount: 5000},
			due:    5000,
			setupMock: func(m *resident.MockRepository, r *resident.Resident) {
				m.EXPECT().
					ApplyCollection(gomock.Any(), r, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *resident.Resident, pay *payment.Payment) error {
						assert.Equal(t, payment.TypeFull, pay.Type)
						assert.Equal(t, payment.StatusApproved, pay.Status)
						return nil
					})
			},
			wantDue:  0,
			wantNext: date(2025, time.July, 1),
		},
		{
			name:   "PartialLeavesRemainderAndCycle",
			params: resident.CollectParams{Amount: 2000},
			due:    5000,
			setupMock: func(m *resident.MockRepository, r *resident.Resident) {
				m.EXPECT().
					ApplyCollection(gomock.Any(), r, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *resident.Resident, pay *payment.Payment) error {
						assert.Equal(t, payment.TypePartial, pay.Type)
						return nil
					})
			},
			wantDue:  3000,
			wantNext: date(2025, time.June, 1),
		},
		{
			name:    "OverpaymentRejected",
			params:  resident.CollectParams{Amount: 5001},
			due:     5000,
			wantErr: resident.ErrInvalidAmount,
		},
		{
			name:    "ZeroRejected",
			params:  resident.CollectParams{Amount: 0},
			due:     5000,
			wantErr: resident.ErrInvalidAmount,
		},
		{
			name:    "NegativeRejected",
			params:  resident.CollectParams{Amount: -100},
			due:     5000,
			wantErr: resident.ErrInvalidAmount,
		},
		{
			name:    "NothingOwedRejectsAnyAmount",
			params:  resident.CollectParams{Amount: 1},
			due:     0,
			wantErr: resident.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			r := baseResident()
			r.DueAmount = tt.due

			repo := resident.NewMockRepository(ctrl)
			repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil)

			if tt.setupMock != nil {
				tt.setupMock(repo, r)
			}

			svc := resident.NewService(repo)
			got, err := svc.CollectFee(context.Background(), id, tt.params)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantDue, got.DueAmount)
			require.NotNil(t, got.NextFeeDate)
			assert.Equal(t, tt.wantNext, *got.NextFeeDate)
		})
	}
}

func TestService_CollectFee_PendingDoesNotTouchDue(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	r := &resident.Resident{
		ID:          id,
		Name:        "Asha Verma",
		MonthlyFee:  5000,
		DueAmount:   5000,
		NextFeeDate: datePtr(2025, time.June, 1),
	}

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil)
	repo.EXPECT().
		RecordPayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, pay *payment.Payment) error {
			assert.Equal(t, payment.StatusPending, pay.Status)
			assert.Equal(t, id, pay.ResidentID)
			return nil
		})

	svc := resident.NewService(repo)

	got, err := svc.CollectFee(context.Background(), id, resident.CollectParams{Amount: 2000, Pending: true})
	require.NoError(t, err)
	assert.Equal(t, int64(5000), got.DueAmount)
	assert.Equal(t, date(2025, time.June, 1), *got.NextFeeDate)
}

func TestService_ApproveFee(t *testing.T) {
	id := uuid.New()

	t.Run("AppliesAllPending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := &resident.Resident{
			ID:          id,
			MonthlyFee:  5000,
			DueAmount:   5000,
			NextFeeDate: datePtr(2025, time.June, 1),
		}
		pending := []*payment.Payment{
			{ID: uuid.New(), Amount: 2000, Status: payment.StatusPending},
			{ID: uuid.New(), Amount: 3000, Status: payment.StatusPending},
		}

		repo := resident.NewMockRepository(ctrl)
		repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil)
		repo.EXPECT().PendingPayments(gomock.Any(), id).Return(pending, nil)
		repo.EXPECT().
			ApplyApproval(gomock.Any(), r, []uuid.UUID{pending[0].ID, pending[1].ID}).
			Return(nil)

		svc := resident.NewService(repo)

		got, err := svc.ApproveFee(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.DueAmount)
		assert.Equal(t, date(2025, time.July, 1), *got.NextFeeDate)
	})

	t.Run("NothingPendingIsNoOp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := &resident.Resident{ID: id, MonthlyFee: 5000, DueAmount: 5000}

		repo := resident.NewMockRepository(ctrl)
		repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil)
		repo.EXPECT().PendingPayments(gomock.Any(), id).Return(nil, nil)

		svc := resident.NewService(repo)

		got, err := svc.ApproveFee(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(5000), got.DueAmount)
	})

	t.Run("ClampsToOutstandingDue", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := &resident.Resident{
			ID:          id,
			MonthlyFee:  5000,
			DueAmount:   1000,
			NextFeeDate: datePtr(2025, time.June, 1),
		}
		pending := []*payment.Payment{
			{ID: uuid.New(), Amount: 4000, Status: payment.StatusPending},
		}

		repo := resident.NewMockRepository(ctrl)
		repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil)
		repo.EXPECT().PendingPayments(gomock.Any(), id).Return(pending, nil)
		repo.EXPECT().ApplyApproval(gomock.Any(), r, gomock.Any()).Return(nil)

		svc := resident.NewService(repo)

		got, err := svc.ApproveFee(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.DueAmount)
	})

	t.Run("LostRaceReturnsFreshState", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		r := &resident.Resident{
			ID:          id,
			MonthlyFee:  5000,
			DueAmount:   5000,
			NextFeeDate: datePtr(2025, time.June, 1),
		}
		pending := []*payment.Payment{
			{ID: uuid.New(), Amount: 5000, Status: payment.StatusPending},
		}
		fresh := &resident.Resident{ID: id, MonthlyFee: 5000, DueAmount: 0}

		repo := resident.NewMockRepository(ctrl)
		gomock.InOrder(
			repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil),
			repo.EXPECT().PendingPayments(gomock.Any(), id).Return(pending, nil),
			repo.EXPECT().ApplyApproval(gomock.Any(), r, gomock.Any()).Return(resident.ErrAlreadyApproved),
			repo.EXPECT().GetResident(gomock.Any(), id).Return(fresh, nil),
		)

		svc := resident.NewService(repo)

		got, err := svc.ApproveFee(context.Background(), id)
		require.NoError(t, err)
		assert.Equal(t, int64(0), got.DueAmount)
	})
}

// A partial collection followed by the remainder walks the resident
// through PARTIAL back to PAID with the cycle advanced exactly once.
func TestService_CollectFee_PartialThenRemainder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	today := date(2025, time.May, 20)
	r := &resident.Resident{
		ID:          id,
		MonthlyFee:  5000,
		DueAmount:   5000,
		NextFeeDate: datePtr(2025, time.June, 1),
	}

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().GetResident(gomock.Any(), id).Return(r, nil).Times(2)
	repo.EXPECT().ApplyCollection(gomock.Any(), r, gomock.Any()).Return(nil).Times(2)

	svc := resident.NewService(repo)

	got, err := svc.CollectFee(context.Background(), id, resident.CollectParams{Amount: 2000})
	require.NoError(t, err)
	assert.Equal(t, fee.StatusPartial, got.FeeStatus(today))
	assert.Equal(t, date(2025, time.June, 1), *got.NextFeeDate)

	got, err = svc.CollectFee(context.Background(), id, resident.CollectParams{Amount: 3000})
	require.NoError(t, err)
	assert.Equal(t, fee.StatusPaid, got.FeeStatus(today))
	assert.Equal(t, date(2025, time.July, 1), *got.NextFeeDate)
}

func TestService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().DeleteResident(gomock.Any(), id).Return(nil)

	svc := resident.NewService(repo)
	require.NoError(t, svc.Delete(context.Background(), id))
}

func TestService_Search_PagingDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		SearchResidents(gomock.Any(), resident.SearchFilter{Query: "asha", Paging: true, PageIndex: 0, PageCount: 10}).
		Return([]*resident.Resident{}, nil)

	svc := resident.NewService(repo)

	_, err := svc.Search(context.Background(), resident.SearchFilter{Query: "asha", Paging: true, PageIndex: -3})
	require.NoError(t, err)
}

func TestService_CollectFee_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().GetResident(gomock.Any(), id).Return(nil, resident.ErrNotFound)

	svc := resident.NewService(repo)

	_, err := svc.CollectFee(context.Background(), id, resident.CollectParams{Amount: 100})
	assert.ErrorIs(t, err, resident.ErrNotFound)
}
