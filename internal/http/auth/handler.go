package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/hostelhq/hostelhq/internal/auth"
	"github.com/hostelhq/hostelhq/internal/http/respond"
	"github.com/hostelhq/hostelhq/internal/validate"
)

type Handler struct {
	svc *auth.Service
}

func NewHandler(svc *auth.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/login", h.login)
}

type loginRequest struct {
	Username string `json:"username" validate:"required,notblank"`
	Password string `json:"password" validate:"required"`
}

type operatorResponse struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Username string    `json:"username"`
	Role     auth.Role `json:"role"`
	HostelID uuid.UUID `json:"hostel_id"`
}

type loginResponse struct {
	Token      string           `json:"token"`
	MasterUser operatorResponse `json:"masterUser"`
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Fail(w, http.StatusBadRequest, "malformed request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		var verr *validate.Error
		if errors.As(err, &verr) {
			respond.Validation(w, verr)
			return
		}

		respond.Fail(w, http.StatusInternalServerError, "internal error")

		return
	}

	token, op, err := h.svc.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			respond.Fail(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		respond.Fail(w, http.StatusInternalServerError, "login failed")

		return
	}

	respond.JSON(w, http.StatusOK, loginResponse{
		Token: token,
		MasterUser: operatorResponse{
			ID:       op.ID,
			Name:     op.Name,
			Username: op.Username,
			Role:     op.Role,
			HostelID: op.HostelID,
		},
	})
}
