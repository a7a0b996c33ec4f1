package users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	userService "github.com/m04kA/SMC-SalonService/internal/service/users"
	"github.com/m04kA/SMC-SalonService/internal/service/users/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidUser        = "datos de usuario inválidos"
	msgInvalidAccess      = "nombre, departamento y extensión (solo dígitos) son obligatorios"
	msgForbidden          = "la gestión de usuarios requiere el administrador general"
)

type Handler struct {
	service UserService
	logger  Logger
}

func NewHandler(service UserService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// List GET /api/v1/admin/users
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	result, err := h.service.List(r.Context(), caller)
	if err != nil {
		h.respondError(w, "GET /admin/users", err, msgInvalidUser)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, result)
}

// Upsert PUT /api/v1/admin/users
func (h *Handler) Upsert(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	var req models.UpsertUserRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /admin/users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Upsert(r.Context(), caller, &req)
	if err != nil {
		h.respondError(w, "PUT /admin/users", err, msgInvalidUser)
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	h.logger.Info("PUT /admin/users - User %s saved by %s (created=%t)", result.User.Email, caller, result.Created)
	handlers.RespondJSON(w, status, result)
}

// RequestAccess POST /api/v1/access-requests
func (h *Handler) RequestAccess(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	var req models.AccessRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /access-requests - Invalid request body: caller=%s, error=%v", caller, err)
		handlers.RespondBadRequest(w, msgInvalidAccess)
		return
	}

	result, err := h.service.RequestAccess(r.Context(), caller, &req)
	if err != nil {
		h.respondError(w, "POST /access-requests", err, msgInvalidAccess)
		return
	}

	h.logger.Info("POST /access-requests - Access requested by %s", caller)
	handlers.RespondJSON(w, http.StatusAccepted, result)
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error, invalidMsg string) {
	switch {
	case errors.Is(err, userService.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: %v", route, err)
		handlers.RespondBadRequest(w, invalidMsg)
	case errors.Is(err, userService.ErrAccessDenied):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)
	default:
		h.logger.Error("%s - Failed: %v", route, err)
		handlers.RespondDomainError(w, err, "")
	}
}
