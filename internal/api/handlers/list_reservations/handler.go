package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

const (
	msgInvalidDate = "rango de fechas inválido, se espera YYYY-MM-DD"
	msgForbidden   = "se requieren permisos de administrador"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleMine GET /api/v1/reservations/mine?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleMine(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	result, err := h.service.ListMine(r.Context(), caller, listRequest(r))
	if err != nil {
		h.respondError(w, "GET /reservations/mine", err)
		return
	}

	h.logger.Info("GET /reservations/mine - %d reservation(s) for %s", len(result.Reservations), caller)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleAdmin GET /api/v1/admin/reservations?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleAdmin(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	result, err := h.service.ListAdmin(r.Context(), caller, listRequest(r))
	if err != nil {
		h.respondError(w, "GET /admin/reservations", err)
		return
	}

	h.logger.Info("GET /admin/reservations - %d reservation(s) for %s", len(result.Reservations), caller)
	handlers.RespondJSON(w, http.StatusOK, result)
}

func listRequest(r *http.Request) models.ListRequest {
	q := r.URL.Query()
	return models.ListRequest{From: q.Get("from"), To: q.Get("to")}
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, reservations.ErrInvalidInput):
		h.logger.Warn("%s - Invalid range: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
	case errors.Is(err, reservations.ErrAccessDenied):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	default:
		h.logger.Error("%s - Failed to list reservations: %v", route, err)
		handlers.RespondDomainError(w, err, "")
	}
}
