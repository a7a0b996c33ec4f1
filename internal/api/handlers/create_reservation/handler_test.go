package create_reservation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

type stubUseCase struct {
	got *createReservation.Request
	err error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &createReservation.Response{
		Reservation: &domain.Reservation{
			ID: "R-00101", Token: "tok", Status: domain.StatusApproved,
			Date: time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC), StartTime: req.Start, EndTime: types.MustTimeString("11:00"),
			SalonID: req.SalonID, RequesterEmail: req.RequesterEmail, TenantID: "1",
		},
		Displaced: []string{"R-00007"},
	}, nil
}

const validBody = `{"salonId":"AZUL","date":"2026-03-09","startTime":"10:00","durationMinutes":60,"capacity":5,"eventName":"Reunión","audience":"interno"}`

func serve(uc *stubUseCase, body string) *httptest.ResponseRecorder {
	h := NewHandler(uc, usecasetest.NopLogger{})
	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	r = r.WithContext(middleware.WithCallerEmail(r.Context(), "ana@corp.test"))
	w := httptest.NewRecorder()
	h.Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(uc, validBody)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "ana@corp.test", uc.got.RequesterEmail)
	assert.Equal(t, types.TimeString("10:00"), uc.got.Start)
	assert.Equal(t, "2026-03-09", uc.got.Date)
	assert.Equal(t, "interno", uc.got.Audience)

	var body CreateReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "R-00101", body.Reservation.ID)
	assert.Equal(t, "APROBADA", body.Reservation.Status)
	assert.Equal(t, []string{"R-00007"}, body.Displaced)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"malformed json", `{`, nil, http.StatusBadRequest, ""},
		{"missing salon", `{"date":"2026-03-09","startTime":"10:00","eventName":"x"}`, nil, http.StatusBadRequest, ""},
		{"bad date", validBody, createReservation.ErrInvalidDate, http.StatusBadRequest, ""},
		{"bad time", validBody, createReservation.ErrInvalidTime, http.StatusBadRequest, ""},
		{"bad audience", validBody, createReservation.ErrInvalidAudience, http.StatusBadRequest, ""},
		{"bad capacity", validBody, createReservation.ErrInvalidCapacity, http.StatusBadRequest, ""},
		{"salon not found", validBody, createReservation.ErrSalonNotFound, http.StatusNotFound, ""},
		{"salon disabled", validBody, createReservation.ErrSalonDisabled, http.StatusBadRequest, ""},
		{"same priority", validBody, domain.NewConflict(domain.ConflictSamePriority, "taken"), http.StatusConflict, "SAME_PRIORITY"},
		{"out of hours", validBody, domain.NewConflict(domain.ConflictOutOfHours, "late"), http.StatusConflict, "OUT_OF_HOURS"},
		{"internal", validBody, fmt.Errorf("%w: db down", createReservation.ErrInternal), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(&stubUseCase{err: tt.err}, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantReason != "" {
				var body handlers.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
				assert.Equal(t, tt.wantReason, body.Reason)
				assert.NotEmpty(t, body.Error)
			}
		})
	}
}

func TestHandle_PassesRawScheduleThrough(t *testing.T) {
	uc := &stubUseCase{}
	body := strings.Replace(strings.Replace(validBody, "2026-03-09", " 09/03/2026 ", 1), `"10:00"`, `"25:00"`, 1)
	w := serve(uc, body)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Equal(t, "09/03/2026", uc.got.Date)
	assert.Equal(t, types.TimeString("25:00"), uc.got.Start)
}

func TestHandle_EventNameIsOptional(t *testing.T) {
	uc := &stubUseCase{}
	w := serve(uc, `{"salonId":"AZUL","date":"2026-03-09","startTime":"10:00","durationMinutes":60,"capacity":5}`)

	require.Equal(t, http.StatusCreated, w.Code)
	require.NotNil(t, uc.got)
	assert.Empty(t, uc.got.EventName)
	assert.Empty(t, uc.got.Audience)
}

func TestHandle_ScheduleErrorsHaveSpecificMessages(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{createReservation.ErrInvalidDate, msgInvalidDate},
		{createReservation.ErrInvalidTime, msgInvalidTime},
		{createReservation.ErrInvalidAudience, msgInvalidAudience},
	}

	for _, tt := range tests {
		w := serve(&stubUseCase{err: fmt.Errorf("%w: detail", tt.err)}, validBody)

		require.Equal(t, http.StatusBadRequest, w.Code)
		var body handlers.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, tt.want, body.Error)
	}
}
