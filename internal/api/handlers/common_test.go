package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{"validation", fmt.Errorf("%w: bad", domain.ErrValidation), http.StatusBadRequest, ""},
		{"not found", fmt.Errorf("%w: x", domain.ErrNotFound), http.StatusNotFound, ""},
		{"unauthorized", domain.ErrUnauthorized, http.StatusForbidden, ""},
		{"conflict with reason", domain.NewConflict(domain.ConflictSamePriority, "taken"), http.StatusConflict, "SAME_PRIORITY"},
		{"wrapped conflict", fmt.Errorf("create: %w", domain.NewConflict(domain.ConflictOutOfHours, "late")), http.StatusConflict, "OUT_OF_HOURS"},
		{"plain conflict", domain.ErrConflict, http.StatusConflict, ""},
		{"terminal", fmt.Errorf("%w: cancelled", domain.ErrAlreadyTerminal), http.StatusConflict, ReasonAlreadyTerminal},
		{"internal", errors.New("boom"), http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, reason := StatusOf(tt.err)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

func TestRespondDomainError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondDomainError(w, domain.NewConflict(domain.ConflictPendingExists, "pending"), "")

	assert.Equal(t, http.StatusConflict, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "PENDING_EXISTS", body.Reason)
	assert.NotEmpty(t, body.Error)

	w = httptest.NewRecorder()
	RespondDomainError(w, errors.New("db down"), "ignored")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "db down")
}

func TestDecodeAndValidate(t *testing.T) {
	type payload struct {
		Email string `json:"email" validate:"required,email"`
	}

	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"a@corp.test"}`))
	var ok payload
	require.NoError(t, DecodeAndValidate(r, &ok))
	assert.Equal(t, "a@corp.test", ok.Email)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"email":"nope"}`))
	var bad payload
	assert.ErrorIs(t, DecodeAndValidate(r, &bad), ErrValidationFailed)

	r = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))
	assert.ErrorIs(t, DecodeAndValidate(r, &bad), ErrInvalidBody)
}

func TestQueryDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?date=2026-03-09&bad=09/03/2026", nil)

	d, ok, err := QueryDate(r, "date", true)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2026-03-09", d.Format(domain.DateFormat))

	_, _, err = QueryDate(r, "bad", false)
	assert.ErrorIs(t, err, ErrInvalidQuery)

	_, ok, err = QueryDate(r, "missing", false)
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = QueryDate(r, "missing", true)
	assert.ErrorIs(t, err, ErrInvalidQuery)
}
