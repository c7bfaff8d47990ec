package resident_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/hostelhq/hostelhq/internal/auth"
	residentHandler "github.com/hostelhq/hostelhq/internal/http/resident"
	"github.com/hostelhq/hostelhq/internal/payment"
	"github.com/hostelhq/hostelhq/internal/resident"
)

type operatorRepo struct {
	op *auth.Operator
}

func (r *operatorRepo) FindOperatorByUsername(context.Context, string) (*auth.Operator, error) {
	return r.op, nil
}

// newServer mounts the handler behind the auth middleware the way the
// router does, returning a token for the given role.
func newServer(t *testing.T, repo resident.Repository, role auth.Role) (http.Handler, string) {
	t.Helper()

	hash, err := auth.HashPassword("pw")
	require.NoError(t, err)

	op := &auth.Operator{
		ID:           uuid.New(),
		Username:     "op",
		Name:         "Operator",
		Role:         role,
		HostelID:     uuid.New(),
		PasswordHash: hash,
	}

	authSvc := auth.NewService(&operatorRepo{op: op}, "test-signing-key", time.Hour)

	token, _, err := authSvc.Login(context.Background(), "op", "pw")
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Group(func(r chi.Router) {
		r.Use(auth.Middleware(authSvc))
		r.Route("/user", residentHandler.NewHandler(resident.NewService(repo)).Routes)
	})

	return router, token
}

type envelope struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func doJSON(t *testing.T, h http.Handler, method, path, token, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	return rec, env
}

func TestHandler_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateResident(gomock.Any(), gomock.Any(), nil).
		DoAndReturn(func(_ context.Context, r *resident.Resident, _ *payment.Payment) error {
			r.ID = uuid.New()
			r.CreatedAt = time.Now()
			return nil
		})

	h, token := newServer(t, repo, auth.RoleAdmin)

	rec, env := doJSON(t, h, http.MethodPost, "/user/", token,
		`{"user_name":"Asha Verma","monthly_fee":5000,"joining_date":"2025-03-10"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.True(t, env.Status)

	var data struct {
		Name        string `json:"user_name"`
		DueAmount   int64  `json:"due_amount"`
		FeeStatus   string `json:"fee_status"`
		NextFeeDate string `json:"next_fee_date"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "Asha Verma", data.Name)
	assert.Equal(t, int64(5000), data.DueAmount)
	assert.Equal(t, "2025-04-10", data.NextFeeDate)
}

func TestHandler_Create_ValidationErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	h, token := newServer(t, repo, auth.RoleAdmin)

	t.Run("BadDate", func(t *testing.T) {
		rec, env := doJSON(t, h, http.MethodPost, "/user/", token,
			`{"user_name":"Asha","monthly_fee":5000,"joining_date":"10/03/2025"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.False(t, env.Status)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "joining_date", env.Errors[0].Field)
	})

	t.Run("BlankName", func(t *testing.T) {
		rec, env := doJSON(t, h, http.MethodPost, "/user/", token,
			`{"user_name":"  ","monthly_fee":5000,"joining_date":"2025-03-10"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.NotEmpty(t, env.Errors)
		assert.Equal(t, "user_name", env.Errors[0].Field)
	})
}

func TestHandler_Create_RoomFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().CreateResident(gomock.Any(), gomock.Any(), nil).Return(resident.ErrRoomFull)

	h, token := newServer(t, repo, auth.RoleAdmin)

	roomID := uuid.New()
	rec, env := doJSON(t, h, http.MethodPost, "/user/", token,
		`{"user_name":"Asha","monthly_fee":5000,"joining_date":"2025-03-10","room_id":"`+roomID.String()+`"}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.False(t, env.Status)
}

func TestHandler_CollectFee_RoleDrivesPending(t *testing.T) {
	id := uuid.New()

	newResident := func() *resident.Resident {
		next := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
		return &resident.Resident{
			ID:          id,
			Name:        "Asha Verma",
			MonthlyFee:  5000,
			DueAmount:   5000,
			JoiningDate: time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC),
			NextFeeDate: &next,
		}
	}

	t.Run("AdminAppliesImmediately", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := resident.NewMockRepository(ctrl)
		repo.EXPECT().GetResident(gomock.Any(), id).Return(newResident(), nil)
		repo.EXPECT().
			ApplyCollection(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *resident.Resident, pay *payment.Payment) error {
				assert.Equal(t, payment.StatusApproved, pay.Status)
				return nil
			})

		h, token := newServer(t, repo, auth.RoleAdmin)

		rec, env := doJSON(t, h, http.MethodPost, "/user/"+id.String()+"/collect-fee", token,
			`{"amount":5000}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			DueAmount int64  `json:"due_amount"`
			FeeStatus string `json:"fee_status"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(0), data.DueAmount)
		assert.Equal(t, "PAID", data.FeeStatus)
	})

	t.Run("SupervisorRecordsPending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := resident.NewMockRepository(ctrl)
		repo.EXPECT().GetResident(gomock.Any(), id).Return(newResident(), nil)
		repo.EXPECT().
			RecordPayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, pay *payment.Payment) error {
				assert.Equal(t, payment.StatusPending, pay.Status)
				return nil
			})

		h, token := newServer(t, repo, auth.RoleSupervisor)

		rec, env := doJSON(t, h, http.MethodPost, "/user/"+id.String()+"/collect-fee", token,
			`{"amount":5000}`)

		assert.Equal(t, http.StatusOK, rec.Code)

		var data struct {
			DueAmount int64 `json:"due_amount"`
		}
		require.NoError(t, json.Unmarshal(env.Data, &data))
		assert.Equal(t, int64(5000), data.DueAmount, "a pending collection must not touch the due")
	})
}

func TestHandler_CollectFee_Overpayment(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	next := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().GetResident(gomock.Any(), id).Return(&resident.Resident{
		ID: id, Name: "Asha", MonthlyFee: 5000, DueAmount: 2000, NextFeeDate: &next,
	}, nil)

	h, token := newServer(t, repo, auth.RoleAdmin)

	rec, env := doJSON(t, h, http.MethodPost, "/user/"+id.String()+"/collect-fee", token,
		`{"amount":2001}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, env.Status)
}

func TestHandler_Unauthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := resident.NewMockRepository(ctrl)
	h, _ := newServer(t, repo, auth.RoleAdmin)

	req := httptest.NewRequest(http.MethodPost, "/user/search", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandler_Delete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	id := uuid.New()
	repo := resident.NewMockRepository(ctrl)
	repo.EXPECT().DeleteResident(gomock.Any(), id).Return(resident.ErrNotFound)

	h, token := newServer(t, repo, auth.RoleAdmin)

	rec, env := doJSON(t, h, http.MethodDelete, "/user/"+id.String(), token, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, env.Status)
}
