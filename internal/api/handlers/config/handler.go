package config

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/settings"
	"github.com/m04kA/SMC-SalonService/internal/service/settings/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidKey         = "clave de configuración inválida o no modificable en su ámbito"
	msgForbidden          = "se requieren permisos de administrador"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Get GET /api/v1/admin/config/{key}
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]

	result, err := h.service.Get(r.Context(), middleware.CallerEmail(r.Context()), key)
	if err != nil {
		h.respondError(w, "GET /admin/config/{key}", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Set PUT /api/v1/admin/config/{key}
// Body: {"value": "08:00"}
func (h *Handler) Set(w http.ResponseWriter, r *http.Request) {
	key := mux.Vars(r)["key"]
	caller := middleware.CallerEmail(r.Context())

	var req models.SetConfigRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /admin/config/{key} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Set(r.Context(), caller, key, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/config/{key}", err)
		return
	}

	h.logger.Info("PUT /admin/config/{key} - %s updated in %s by %s", result.Key, result.Scope, caller)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, settings.ErrInvalidKey):
		h.logger.Warn("%s - Invalid key: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidKey)
	case errors.Is(err, settings.ErrAccessDenied):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondDomainError(w, err, "")
	}
}
