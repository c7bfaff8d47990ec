package dashboard

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/dashboard"
	"github.com/hostelhq/hostelhq/internal/fee"
	"github.com/hostelhq/hostelhq/internal/http/respond"
	"github.com/hostelhq/hostelhq/internal/resident"
)

type Handler struct {
	svc         *dashboard.Service
	residentSvc *resident.Service
}

func NewHandler(svc *dashboard.Service, residentSvc *resident.Service) *Handler {
	return &Handler{svc: svc, residentSvc: residentSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.summary)
	r.Get("/partial-users", h.partialUsers)
	r.Get("/overdue-users", h.overdueUsers)
	r.Get("/available-beds", h.availableBeds)
	r.Get("/pending-collections", h.pendingCollections)
	r.Post("/users/{id}/approve-fee", h.approveFee)
}

type summaryResponse struct {
	TotalUsers         int   `json:"total_users"`
	PartialUsers       int   `json:"partial_users"`
	OverdueUsers       int   `json:"overdue_users"`
	AvailableBeds      int   `json:"available_beds"`
	CollectedThisMonth int64 `json:"collected_this_month"`
	PendingList        int   `json:"pending_list"`
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.svc.Summary(r.Context(), time.Now())
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	respond.JSON(w, http.StatusOK, summaryResponse{
		TotalUsers:         sum.TotalUsers,
		PartialUsers:       sum.PartialUsers,
		OverdueUsers:       sum.OverdueUsers,
		AvailableBeds:      sum.AvailableBeds,
		CollectedThisMonth: sum.CollectedThisMonth,
		PendingList:        sum.PendingList,
	})
}

type userRowResponse struct {
	ID          uuid.UUID        `json:"user_id"`
	Name        string           `json:"user_name"`
	MonthlyFee  int64            `json:"monthly_fee"`
	DueAmount   int64            `json:"due_amount"`
	DelayDays   int              `json:"delay_days"`
	FeeStatus   fee.Status       `json:"fee_status"`
	NextFeeDate *string          `json:"next_fee_date,omitempty"`
	Room        *roomRefResponse `json:"room,omitempty"`
}

type roomRefResponse struct {
	ID          uuid.UUID `json:"room_id"`
	RoomNumber  string    `json:"room_number"`
	FloorNumber string    `json:"floor_number"`
}

func toUserRow(r *resident.Resident, now time.Time) userRowResponse {
	row := userRowResponse{
		ID:         r.ID,
		Name:       r.Name,
		MonthlyFee: r.MonthlyFee,
		DueAmount:  r.DueAmount,
		DelayDays:  r.DelayDays(now),
		FeeStatus:  r.FeeStatus(now),
	}

	if r.NextFeeDate != nil {
		next := r.NextFeeDate.Format(time.DateOnly)
		row.NextFeeDate = &next
	}

	if r.Room != nil {
		row.Room = &roomRefResponse{
			ID:          r.Room.ID,
			RoomNumber:  r.Room.RoomNumber,
			FloorNumber: r.Room.FloorNumber,
		}
	}

	return row
}

func toUserRows(residents []*resident.Resident, now time.Time) []userRowResponse {
	rows := make([]userRowResponse, len(residents))
	for i, r := range residents {
		rows[i] = toUserRow(r, now)
	}

	return rows
}

func (h *Handler) partialUsers(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	residents, err := h.svc.PartialUsers(r.Context(), now)
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to load partial users")
		return
	}

	respond.JSON(w, http.StatusOK, toUserRows(residents, now))
}

func (h *Handler) overdueUsers(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	residents, err := h.svc.OverdueUsers(r.Context(), now)
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to load overdue users")
		return
	}

	respond.JSON(w, http.StatusOK, toUserRows(residents, now))
}

type availableRoomResponse struct {
	ID            uuid.UUID `json:"room_id"`
	RoomNumber    string    `json:"room_number"`
	FloorNumber   string    `json:"floor_number"`
	TotalBeds     int       `json:"total_beds"`
	AvailableBeds int       `json:"available_beds"`
}

func (h *Handler) availableBeds(w http.ResponseWriter, r *http.Request) {
	rooms, err := h.svc.AvailableRooms(r.Context())
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to load available beds")
		return
	}

	resp := make([]availableRoomResponse, len(rooms))
	for i, rm := range rooms {
		resp[i] = availableRoomResponse{
			ID:            rm.ID,
			RoomNumber:    rm.RoomNumber,
			FloorNumber:   rm.FloorNumber,
			TotalBeds:     rm.TotalBeds,
			AvailableBeds: rm.AvailableBeds,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

type pendingRowResponse struct {
	userRowResponse
	PendingAmount int64 `json:"pending_amount"`
}

func (h *Handler) pendingCollections(w http.ResponseWriter, r *http.Request) {
	now := time.Now()

	pending, err := h.svc.PendingCollections(r.Context())
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to load pending collections")
		return
	}

	resp := make([]pendingRowResponse, len(pending))
	for i, p := range pending {
		resp[i] = pendingRowResponse{
			userRowResponse: toUserRow(p.Resident, now),
			PendingAmount:   p.PendingAmount,
		}
	}

	respond.JSON(w, http.StatusOK, resp)
}

func (h *Handler) approveFee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	res, err := h.residentSvc.ApproveFee(r.Context(), id)
	if err != nil {
		if errors.Is(err, resident.ErrNotFound) {
			respond.Fail(w, http.StatusNotFound, "user not found")
			return
		}

		respond.Fail(w, http.StatusInternalServerError, "failed to approve fee")

		return
	}

	respond.JSON(w, http.StatusOK, toUserRow(res, time.Now()))
}
