package room

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/http/respond"
	"github.com/hostelhq/hostelhq/internal/room"
	"github.com/hostelhq/hostelhq/internal/validate"
)

type Handler struct {
	svc *room.Service
}

func NewHandler(svc *room.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/search", h.search)
	r.Post("/", h.create)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

type roomResponse struct {
	ID            uuid.UUID   `json:"room_id"`
	RoomNumber    string      `json:"room_number"`
	FloorNumber   string      `json:"floor_number"`
	TotalBeds     int         `json:"total_beds"`
	AvailableBeds int         `json:"available_beds"`
	Status        room.Status `json:"status"`
	CreatedAt     time.Time   `json:"created_at"`
	UpdatedAt     *time.Time  `json:"updated_at,omitempty"`
}

func toResponse(r *room.Room) roomResponse {
	return roomResponse{
		ID:            r.ID,
		RoomNumber:    r.RoomNumber,
		FloorNumber:   r.FloorNumber,
		TotalBeds:     r.TotalBeds,
		AvailableBeds: r.AvailableBeds,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func toResponseList(rooms []*room.Room) []roomResponse {
	resp := make([]roomResponse, len(rooms))
	for i, r := range rooms {
		resp[i] = toResponse(r)
	}

	return resp
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

	rooms, err := h.svc.Search(r.Context(), room.SearchFilter{
		Query:     strings.TrimSpace(req.Search),
		Paging:    strings.EqualFold(req.Paging, "yes"),
		PageIndex: req.PageIndex,
		PageCount: req.PageCount,
	})
	if err != nil {
		respond.Fail(w, http.StatusInternalServerError, "failed to search rooms")
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(rooms))
}

type createRoomRequest struct {
	RoomNumber  string      `json:"room_number"`
	FloorNumber string      `json:"floor_number"`
	TotalBeds   int         `json:"total_beds"`
	Status      room.Status `json:"status"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	created, err := h.svc.Create(r.Context(), room.CreateParams{
		RoomNumber:  req.RoomNumber,
		FloorNumber: req.FloorNumber,
		TotalBeds:   req.TotalBeds,
		Status:      req.Status,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(created))
}

type updateRoomRequest struct {
	RoomNumber  *string      `json:"room_number"`
	FloorNumber *string      `json:"floor_number"`
	TotalBeds   *int         `json:"total_beds"`
	Status      *room.Status `json:"status"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid room id")
		return
	}

	var req updateRoomRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	updated, err := h.svc.Update(r.Context(), id, room.UpdateParams{
		RoomNumber:  req.RoomNumber,
		FloorNumber: req.FloorNumber,
		TotalBeds:   req.TotalBeds,
		Status:      req.Status,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(updated))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Fail(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}

	respond.Message(w, http.StatusOK, "room deleted")
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		respond.Validation(w, verr)
		return
	}

	switch {
	case errors.Is(err, room.ErrNotFound):
		respond.Fail(w, http.StatusNotFound, "room not found")
	case errors.Is(err, room.ErrOccupied):
		respond.Fail(w, http.StatusConflict, "room still has residents assigned")
	case errors.Is(err, room.ErrDuplicate):
		respond.Fail(w, http.StatusConflict, "room already exists on this floor")
	default:
		respond.Fail(w, http.StatusInternalServerError, "internal error")
	}
}
