package concierges

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	conciergeService "github.com/m04kA/SMC-SalonService/internal/service/concierges"
	"github.com/m04kA/SMC-SalonService/internal/service/concierges/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidConcierge   = "datos de conserje inválidos"
	msgNotFound           = "conserje no encontrado"
	msgForbidden          = "no tiene permisos para administrar conserjes"
)

type Handler struct {
	service ConciergeService
	logger  Logger
}

func NewHandler(service ConciergeService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/concierges
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context(), middleware.CallerEmail(r.Context()))
	if err != nil {
		h.respondError(w, "GET /admin/concierges", err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Add POST /api/v1/admin/concierges
func (h *Handler) Add(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	var req models.AddConciergeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /admin/concierges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Add(r.Context(), caller, &req)
	if err != nil {
		h.respondError(w, "POST /admin/concierges", err)
		return
	}

	h.logger.Info("POST /admin/concierges - Concierge %s added by %s", result.Code, caller)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// Update PATCH /api/v1/admin/concierges/{code}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	caller := middleware.CallerEmail(r.Context())

	var req models.UpdateConciergeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/concierges/{code} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), caller, code, &req)
	if err != nil {
		h.respondError(w, "PATCH /admin/concierges/{code}", err)
		return
	}

	h.logger.Info("PATCH /admin/concierges/{code} - Concierge %s updated by %s (changed=%t)", code, caller, result.Changed)
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Delete DELETE /api/v1/admin/concierges/{code}
// Логическое удаление: консьерж деактивируется
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	caller := middleware.CallerEmail(r.Context())

	if err := h.service.Delete(r.Context(), caller, code); err != nil {
		h.respondError(w, "DELETE /admin/concierges/{code}", err)
		return
	}

	h.logger.Info("DELETE /admin/concierges/{code} - Concierge %s deactivated by %s", code, caller)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, conciergeService.ErrConciergeNotFound):
		h.logger.Warn("%s - Not found: %v", route, err)
		handlers.RespondNotFound(w, msgNotFound)
	case errors.Is(err, conciergeService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidConcierge)
	case errors.Is(err, conciergeService.ErrAccessDenied):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondDomainError(w, err, "")
	}
}
