package resident

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/fee"
	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/validate"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=resident
type Repository interface {
	// CreateResident persists the resident and the optional initial payment.
	// A room assignment decrements that room's available beds in the same
	// transaction and fails with ErrRoomFull when none are left.
	CreateResident(ctx context.Context, r *Resident, initial *payment.Payment) error
	GetResident(ctx context.Context, id uuid.UUID) (*Resident, error)
	SearchResidents(ctx context.Context, filter SearchFilter) ([]*Resident, error)
	// UpdateResident writes the resident row. A non-nil oldRoomID frees a bed
	// and a non-nil newRoomID claims one, atomically with the row update.
	UpdateResident(ctx context.Context, r *Resident, oldRoomID, newRoomID *uuid.UUID) error
	DeleteResident(ctx context.Context, id uuid.UUID) error

	// ApplyCollection writes the resident's new billing state and the payment
	// event in one transaction.
	ApplyCollection(ctx context.Context, r *Resident, pay *payment.Payment) error
	RecordPayment(ctx context.Context, pay *payment.Payment) error
	PendingPayments(ctx context.Context, residentID uuid.UUID) ([]*payment.Payment, error)
	// ApplyApproval flips the given payments from PENDING to APPROVED and
	// writes the resident's new billing state in one transaction. Returns
	// ErrAlreadyApproved when any of the payments is no longer pending.
	ApplyApproval(ctx context.Context, r *Resident, paymentIDs []uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name        string        `json:"user_name" validate:"required,notblank"`
	Email       string        `json:"email" validate:"omitempty,email"`
	Mobile      string        `json:"mobile" validate:"omitempty,min=7,max=15"`
	MonthlyFee  int64         `json:"monthly_fee" validate:"required,gt=0"`
	JoiningDate time.Time     `json:"joining_date" validate:"required"`
	RoomID      *uuid.UUID    `json:"room_id"`
	Status      Status        `json:"status" validate:"omitempty,oneof=Active Inactive"`
	PaymentType PaymentChoice `json:"payment_type" validate:"omitempty,oneof=NONE FULL PARTIAL"`
	PaidAmount  int64         `json:"paid_amount"`
	ReceiptURL  string        `json:"user_fee_receipt" validate:"omitempty,url"`
}

// Create builds a resident from the profile and initial payment choice.
// NONE leaves a full month owing, FULL starts paid up, PARTIAL owes the
// remainder. All three anchor the next fee date one cycle after joining.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Resident, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	choice := params.PaymentType
	if choice == "" {
		choice = PaymentNone
	}

	var (
		due     int64
		initial *payment.Payment
	)

	switch choice {
	case PaymentNone:
		due = params.MonthlyFee
	case PaymentFull:
		due = 0
		initial = &payment.Payment{
			Amount:     params.MonthlyFee,
			Type:       payment.TypeFull,
			Status:     payment.StatusApproved,
			ReceiptURL: params.ReceiptURL,
		}
	case PaymentPartial:
		// An amount at or above the monthly fee is rejected, not reclassified
		// as FULL.
		if params.PaidAmount <= 0 || params.PaidAmount >= params.MonthlyFee {
			return nil, validate.Failed("paid_amount", "must be greater than zero and less than the monthly fee")
		}

		due = params.MonthlyFee - params.PaidAmount
		initial = &payment.Payment{
			Amount:     params.PaidAmount,
			Type:       payment.TypePartial,
			Status:     payment.StatusApproved,
			ReceiptURL: params.ReceiptURL,
		}
	}

	status := params.Status
	if status == "" {
		status = StatusActive
	}

	next := fee.NextCycle(params.JoiningDate)

	r := &Resident{
		Name:        strings.TrimSpace(params.Name),
		Email:       strings.TrimSpace(params.Email),
		Mobile:      strings.TrimSpace(params.Mobile),
		MonthlyFee:  params.MonthlyFee,
		JoiningDate: params.JoiningDate,
		NextFeeDate: &next,
		DueAmount:   due,
		Status:      status,
		ReceiptURL:  params.ReceiptURL,
	}

	if params.RoomID != nil && *params.RoomID != uuid.Nil {
		r.Room = &RoomRef{ID: *params.RoomID}
	}

	if err := s.repo.CreateResident(ctx, r, initial); err != nil {
		return nil, err
	}

	return r, nil
}

type UpdateParams struct {
	Name       *string `json:"user_name" validate:"omitempty,notblank"`
	Email      *string `json:"email" validate:"omitempty,email"`
	Mobile     *string `json:"mobile"`
	MonthlyFee *int64  `json:"monthly_fee" validate:"omitempty,gt=0"`
	Status     *Status `json:"status" validate:"omitempty,oneof=Active Inactive"`
	// JoiningDate corrects the recorded joining day. The billing anchor
	// (next fee date) is not re-derived from it.
	JoiningDate *time.Time `json:"joining_date"`
	// RoomID moves the resident: nil leaves the assignment unchanged,
	// uuid.Nil clears it.
	RoomID     *uuid.UUID `json:"room_id"`
	ReceiptURL *string    `json:"user_fee_receipt" validate:"omitempty,url"`
}

func (s *Service) Update(ctx context.Context, id uuid.UUID, params UpdateParams) (*Resident, error) {
	if err := validate.Struct(params); err != nil {
		return nil, err
	}

	r, err := s.repo.GetResident(ctx, id)
	if err != nil {
		return nil, err
	}

	var oldRoomID, newRoomID *uuid.UUID

	if params.RoomID != nil {
		current := uuid.Nil
		if r.Room != nil {
			current = r.Room.ID
		}

		if target := *params.RoomID; target != current {
			if current != uuid.Nil {
				freed := current
				oldRoomID = &freed
			}

			if target != uuid.Nil {
				claimed := target
				newRoomID = &claimed
				r.Room = &RoomRef{ID: target}
			} else {
				r.Room = nil
			}
		}
	}

	if params.Name != nil {
		r.Name = strings.TrimSpace(*params.Name)
	}

	if params.Email != nil {
		r.Email = strings.TrimSpace(*params.Email)
	}

	if params.Mobile != nil {
		r.Mobile = strings.TrimSpace(*params.Mobile)
	}

	if params.MonthlyFee != nil {
		r.MonthlyFee = *params.MonthlyFee
	}

	if params.JoiningDate != nil {
		r.JoiningDate = *params.JoiningDate
	}

	if params.Status != nil {
		r.Status = *params.Status
	}

	if params.ReceiptURL != nil {
		r.ReceiptURL = *params.ReceiptURL
	}

	if err := s.repo.UpdateResident(ctx, r, oldRoomID, newRoomID); err != nil {
		return nil, err
	}

	return r, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Resident, error) {
	return s.repo.GetResident(ctx, id)
}

// Delete removes the resident and frees their bed.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteResident(ctx, id)
}

type SearchFilter struct {
	Query     string
	Paging    bool
	PageIndex int
	PageCount int
}

func (s *Service) Search(ctx context.Context, filter SearchFilter) ([]*Resident, error) {
	if filter.Paging {
		if filter.PageCount <= 0 {
			filter.PageCount = 10
		}

		if filter.PageIndex < 0 {
			filter.PageIndex = 0
		}
	}

	return s.repo.SearchResidents(ctx, filter)
}

type CollectParams struct {
	Amount     int64
	Type       payment.Type
	ReceiptURL string
	// Pending records the collection for later approval instead of applying
	// it to the resident's due amount now.
	Pending bool
}

// CollectFee applies a collection to the resident's outstanding due.
// Collecting more than owed is rejected, not clamped. The transition is
// driven by the resulting due amount, not by the FULL/PARTIAL tag.
func (s *Service) CollectFee(ctx context.Context, id uuid.UUID, params CollectParams) (*Resident, error) {
	r, err := s.repo.GetResident(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Amount <= 0 || params.Amount > r.DueAmount {
		return nil, ErrInvalidAmount
	}

	typ := params.Type
	if typ == "" {
		typ = payment.TypePartial
		if params.Amount == r.DueAmount {
			typ = payment.TypeFull
		}
	}

	pay := &payment.Payment{
		ResidentID: r.ID,
		Amount:     params.Amount,
		Type:       typ,
		ReceiptURL: params.ReceiptURL,
	}

	if params.Pending {
		pay.Status = payment.StatusPending
		if err := s.repo.RecordPayment(ctx, pay); err != nil {
			return nil, err
		}

		return r, nil
	}

	pay.Status = payment.StatusApproved
	applyAmount(r, params.Amount)

	if err := s.repo.ApplyCollection(ctx, r, pay); err != nil {
		return nil, err
	}

	return r, nil
}

// ApproveFee applies all of the resident's pending collections. Approving
// a resident with nothing pending is a no-op, so the operation is
// idempotent and never double-applies.
func (s *Service) ApproveFee(ctx context.Context, id uuid.UUID) (*Resident, error) {
	r, err := s.repo.GetResident(ctx, id)
	if err != nil {
		return nil, err
	}

	pending, err := s.repo.PendingPayments(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(pending) == 0 {
		return r, nil
	}

	var total int64

	ids := make([]uuid.UUID, len(pending))
	for i, p := range pending {
		total += p.Amount
		ids[i] = p.ID
	}

	// The due may have been edited since the collections were recorded;
	// never drive it below zero.
	if total > r.DueAmount {
		total = r.DueAmount
	}

	if total > 0 {
		applyAmount(r, total)
	}

	if err := s.repo.ApplyApproval(ctx, r, ids); err != nil {
		if errors.Is(err, ErrAlreadyApproved) {
			// Lost the race to a concurrent approval.
			return s.repo.GetResident(ctx, id)
		}

		return nil, err
	}

	return r, nil
}

// applyAmount subtracts a collected amount. When the due reaches zero the
// next fee date advances one cycle from its previous value, not from
// today, so late collections do not drift the cycle anchor.
func applyAmount(r *Resident, amount int64) {
	r.DueAmount -= amount

	if r.DueAmount == 0 && r.NextFeeDate != nil {
		next := fee.NextCycle(*r.NextFeeDate)
		r.NextFeeDate = &next
	}
}
