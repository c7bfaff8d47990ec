package resident

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/auth"
	"github.com/hostelhq/hostelhq/internal/http/respond"
	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/resident"
	"github.com/hostelhq/hostelhq/internal/validate"
)

type Handler struct {
	svc *resident.Service
}

func NewHandler(svc *resident.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/search", h.search)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/collect-fee", h.collectFee)
}

type searchRequest struct {
	Search    string `json:"search"`
	Paging    string `json:"paging"`
	PageIndex int    `json:"page_index"`
	PageCount int    `json:"page_count"`
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	var req searchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	residents, err := h.svc.Search(r.Context(), resident.SearchFilter{
		Query:     strings.TrimSpace(req.Search),
		Paging:    strings.EqualFold(req.Paging, "yes"),
		PageIndex: req.PageIndex,
		PageCount: req.PageCount,
	})
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to search users")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(residents, time.Now()))
}

type createUserRequest struct {
	Name        string                 `json:"user_name"`
	Email       string                 `json:"email"`
	Mobile      string                 `json:"mobile"`
	MonthlyFee  int64                  `json:"monthly_fee"`
	JoiningDate string                 `json:"joining_date"`
	RoomID      *uuid.UUID             `json:"room_id"`
	Status      resident.Status        `json:"status"`
	PaymentType resident.PaymentChoice `json:"payment_type"`
	PaidAmount  int64                  `json:"paid_amount"`
	ReceiptURL  string                 `json:"user_fee_receipt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	joining, err := time.Parse(time.DateOnly, req.JoiningDate)
	if err != nil {
		respond.Validation(w, validate.Failed("joining_date", "must be a valid date (YYYY-MM-DD)"))
		return
	}

	res, err := h.svc.Create(r.Context(), resident.CreateParams{
		Name:        req.Name,
		Email:       req.Email,
		Mobile:      req.Mobile,
		MonthlyFee:  req.MonthlyFee,
		JoiningDate: joining,
		RoomID:      req.RoomID,
		Status:      req.Status,
		PaymentType: req.PaymentType,
		PaidAmount:  req.PaidAmount,
		ReceiptURL:  req.ReceiptURL,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(res, time.Now()))
}

type updateUserRequest struct {
	Name        *string          `json:"user_name"`
	Email       *string          `json:"email"`
	Mobile      *string          `json:"mobile"`
	MonthlyFee  *int64           `json:"monthly_fee"`
	JoiningDate *string          `json:"joining_date"`
	RoomID      *uuid.UUID       `json:"room_id"`
	Status      *resident.Status `json:"status"`
	ReceiptURL  *string          `json:"user_fee_receipt"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req updateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	params := resident.UpdateParams{
		Name:       req.Name,
		Email:      req.Email,
		Mobile:     req.Mobile,
		MonthlyFee: req.MonthlyFee,
		RoomID:     req.RoomID,
		Status:     req.Status,
		ReceiptURL: req.ReceiptURL,
	}

	if req.JoiningDate != nil {
		joining, err := time.Parse(time.DateOnly, *req.JoiningDate)
		if err != nil {
			respond.Validation(w, validate.Failed("joining_date", "must be a valid date (YYYY-MM-DD)"))
			return
		}

		params.JoiningDate = &joining
	}

	res, err := h.svc.Update(r.Context(), id, params)
	if err != nil {
		h.writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(res, time.Now()))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "user deleted")
}

type collectFeeRequest struct {
	Amount     int64        `json:"amount"`
	Type       payment.Type `json:"type"`
	ReceiptURL string       `json:"user_fee_receipt"`
}

func (h *Handler) collectFee(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid user id")
		return
	}

	var req collectFeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	claims, ok := auth.FromContext(r.Context())
	if !ok {
		respond.Fail(w, http.StatusUnauthorized, "authentication required")
		return
	}

	res, err := h.svc.CollectFee(r.Context(), id, resident.CollectParams{
		Amount:     req.Amount,
		Type:       req.Type,
		ReceiptURL: req.ReceiptURL,
		// Supervisor collections wait for an admin's approval.
		Pending: claims.Role != auth.RoleAdmin,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(res, time.Now()))
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		respond.Validation(w, verr)
		return
	}

	switch {
	case errors.Is(err, resident.ErrNotFound):
		respond.Fail(w, http.StatusNotFound, "user not found")
	case errors.Is(err, resident.ErrRoomFull):
		respond.Fail(w, http.StatusConflict, "room has no available beds")
	case errors.Is(err, resident.ErrInvalidAmount):
		respond.Fail(w, http.StatusBadRequest, "invalid amount")
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
