package salons

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	salonService "github.com/m04kA/SMC-SalonService/internal/service/salons"
	"github.com/m04kA/SMC-SalonService/internal/service/salons/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgSalonNotFound      = "salón no encontrado"
	msgForbidden          = "no tiene permisos para administrar este salón"
)

type Handler struct {
	service SalonService
	logger  Logger
}

func NewHandler(service SalonService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/salons
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /salons - Failed to list salons: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// ListAdmin GET /api/v1/admin/salons
func (h *Handler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	result, err := h.service.ListAdmin(r.Context(), caller)
	if err != nil {
		if errors.Is(err, salonService.ErrAccessDenied) {
			h.logger.Warn("GET /admin/salons - Forbidden: caller=%s", caller)
			handlers.RespondForbidden(w, msgForbidden)
			return
		}
		h.logger.Error("GET /admin/salons - Failed to list salons: %v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Toggle PATCH /api/v1/admin/salons/{salonId}
// Body: {"enabled": false}
func (h *Handler) Toggle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]
	caller := middleware.CallerEmail(r.Context())

	var req models.ToggleSalonRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/salons/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Toggle(r.Context(), caller, salonID, *req.Enabled)
	if err != nil {
		switch {
		case errors.Is(err, salonService.ErrSalonNotFound):
			h.logger.Warn("PATCH /admin/salons/{id} - Salon not found: id=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
		case errors.Is(err, salonService.ErrAccessDenied):
			h.logger.Warn("PATCH /admin/salons/{id} - Forbidden: id=%s, caller=%s", salonID, caller)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("PATCH /admin/salons/{id} - Failed to toggle salon: id=%s, error=%v", salonID, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("PATCH /admin/salons/{id} - Salon %s enabled=%t by %s", salonID, result.Enabled, caller)
	handlers.RespondJSON(w, http.StatusOK, result)
}
