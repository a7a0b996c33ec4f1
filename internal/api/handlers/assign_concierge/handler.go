package assign_concierge

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	assignConcierge "github.com/m04kA/SMC-SalonService/internal/usecase/assign_concierge"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgReservationMissing = "reserva no encontrada"
	msgConciergeMissing   = "conserje no encontrado"
	msgNotApproved        = "solo se asigna conserje a reservas aprobadas"
	msgTooLate            = "la asignación cierra 30 minutos antes del inicio"
	msgNotRequired        = "la reserva no requiere conserje"
	msgConciergeInactive  = "el conserje está inactivo"
	msgConciergeBusy      = "el conserje ya está asignado a otra reserva en ese horario"
	msgForbidden          = "no tiene permisos para asignar conserje a esta reserva"
)

type Handler struct {
	useCase AssignConciergeUseCase
	logger  Logger
}

func NewHandler(useCase AssignConciergeUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/admin/reservations/{id}/concierge
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	caller := middleware.CallerEmail(r.Context())

	var req AssignConciergeRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("PUT /admin/reservations/{id}/concierge - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &assignConcierge.Request{
		ReservationID: id,
		ConciergeCode: req.ConciergeCode,
		CallerEmail:   caller,
	})
	if err != nil {
		route := "PUT /admin/reservations/{id}/concierge"
		switch {
		case errors.Is(err, assignConcierge.ErrReservationNotFound):
			h.logger.Warn("%s - Reservation not found: id=%s", route, id)
			handlers.RespondNotFound(w, msgReservationMissing)
		case errors.Is(err, assignConcierge.ErrConciergeNotFound):
			h.logger.Warn("%s - Concierge not found: code=%s", route, req.ConciergeCode)
			handlers.RespondNotFound(w, msgConciergeMissing)
		case errors.Is(err, assignConcierge.ErrNotApproved):
			handlers.RespondBadRequest(w, msgNotApproved)
		case errors.Is(err, assignConcierge.ErrTooLate):
			handlers.RespondBadRequest(w, msgTooLate)
		case errors.Is(err, assignConcierge.ErrNotRequired):
			handlers.RespondBadRequest(w, msgNotRequired)
		case errors.Is(err, assignConcierge.ErrConciergeInactive):
			handlers.RespondBadRequest(w, msgConciergeInactive)
		case errors.Is(err, assignConcierge.ErrConciergeBusy):
			h.logger.Warn("%s - Concierge busy: id=%s, code=%s", route, id, req.ConciergeCode)
			handlers.RespondConflict(w, msgConciergeBusy, "")
		case errors.Is(err, assignConcierge.ErrNotAdmin), errors.Is(err, assignConcierge.ErrOutOfScope):
			h.logger.Warn("%s - Forbidden: id=%s, caller=%s", route, id, caller)
			handlers.RespondForbidden(w, msgForbidden)
		default:
			h.logger.Error("%s - Failed to assign concierge: id=%s, error=%v", route, id, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("PUT /admin/reservations/{id}/concierge - Assigned: id=%s, code=%s, by=%s", id, result.Concierge.Code, caller)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
