package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
	"github.com/m04kA/SMC-SalonService/internal/usecase/usecasetest"
)

type stubService struct {
	values map[string]string
}

func (s *stubService) Get(_ context.Context, caller, key string) (*models.ConfigEntryResponse, error) {
	if caller != "admin@corp.test" {
		return nil, settings.ErrAccessDenied
	}
	return &models.ConfigEntryResponse{Key: key, Value: s.values[key], Scope: "Config"}, nil
}

func (s *stubService) Set(_ context.Context, caller, key string, req *models.SetConfigRequest) (*models.ConfigEntryResponse, error) {
	if caller != "admin@corp.test" {
		return nil, settings.ErrAccessDenied
	}
	if key == "PUBLIC_WEBAPP_URL" {
		return nil, settings.ErrInvalidKey
	}
	s.values[key] = *req.Value
	return &models.ConfigEntryResponse{Key: key, Value: *req.Value, Scope: "Config"}, nil
}

func do(t *testing.T, svc *stubService, method, path, caller, body string) *httptest.ResponseRecorder {
	t.Helper()
	h := NewHandler(svc, usecasetest.NopLogger{})
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/admin/config/{key}", h.Get).Methods(http.MethodGet)
	r.HandleFunc("/api/v1/admin/config/{key}", h.Set).Methods(http.MethodPut)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req = req.WithContext(middleware.WithCallerEmail(req.Context(), caller))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestConfigHandler(t *testing.T) {
	svc := &stubService{values: map[string]string{"HORARIO_INICIO": "07:00"}}

	w := do(t, svc, http.MethodGet, "/api/v1/admin/config/HORARIO_INICIO", "admin@corp.test", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entry models.ConfigEntryResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, "07:00", entry.Value)

	w = do(t, svc, http.MethodPut, "/api/v1/admin/config/HORARIO_INICIO", "admin@corp.test", `{"value":"08:00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "08:00", svc.values["HORARIO_INICIO"])

	w = do(t, svc, http.MethodPut, "/api/v1/admin/config/HORARIO_INICIO", "admin@corp.test", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, svc, http.MethodPut, "/api/v1/admin/config/PUBLIC_WEBAPP_URL", "admin@corp.test", `{"value":"x"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(t, svc, http.MethodGet, "/api/v1/admin/config/HORARIO_INICIO", "user@corp.test", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
