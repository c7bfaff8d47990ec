package resident

import (
	"time"

	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/fee"
	"github.com/hostelhq/hostelhq/internal/resident"
)

type residentResponse struct {
	ID          uuid.UUID        `json:"user_id"`
	Name        string           `json:"user_name"`
	Email       string           `json:"email,omitempty"`
	Mobile      string           `json:"mobile,omitempty"`
	MonthlyFee  int64            `json:"monthly_fee"`
	JoiningDate string           `json:"joining_date"`
	NextFeeDate *string          `json:"next_fee_date,omitempty"`
	DueAmount   int64            `json:"due_amount"`
	DelayDays   int              `json:"delay_days"`
	FeeStatus   fee.Status       `json:"fee_status"`
	Status      resident.Status  `json:"status"`
	ReceiptURL  string           `json:"user_fee_receipt,omitempty"`
	Room        *roomRefResponse `json:"room,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
}

type roomRefResponse struct {
	ID          uuid.UUID `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	FloorNumber string    `json:"floor_number"`
}

func toResponse(r *resident.Resident, now time.Time) residentResponse {
	resp := residentResponse{
		ID:          r.ID,
		Name:        r.Name,
		Email:       r.Email,
		Mobile:      r.Mobile,
		MonthlyFee:  r.MonthlyFee,
		JoiningDate: r.JoiningDate.Format(time.DateOnly),
		DueAmount:   r.DueAmount,
		DelayDays:   r.DelayDays(now),
		FeeStatus:   r.FeeStatus(now),
		Status:      r.Status,
		ReceiptURL:  r.ReceiptURL,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.NextFeeDate != nil {
		next := r.NextFeeDate.Format(time.DateOnly)
		resp.NextFeeDate = &next
	}

	if r.Room != nil {
		resp.Room = &roomRefResponse{
			ID:          r.Room.ID,
			RoomNumber:  r.Room.RoomNumber,
			FloorNumber: r.Room.FloorNumber,
		}
	}

	return resp
}

func toResponseList(residents []*resident.Resident, now time.Time) []residentResponse {
	resp := make([]residentResponse, len(residents))
	for i, r := range residents {
		resp[i] = toResponse(r, now)
	}

	return resp
}
