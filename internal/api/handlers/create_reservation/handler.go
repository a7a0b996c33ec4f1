package create_reservation

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	createReservation "github.com/m04kA/SMC-SalonService/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidDate        = "fecha inválida, se espera YYYY-MM-DD"
	msgInvalidTime        = "hora de inicio inválida, se espera HH:MM"
	msgSalonNotFound      = "salón no encontrado"
	msgSalonDisabled      = "el salón está deshabilitado temporalmente"
	msgInvalidCapacity    = "cantidad de asistentes inválida para el salón"
	msgInvalidAudience    = "tipo de público inválido, se espera INTERNO, EXTERNO o MIXTO"
	msgInvalidInput       = "datos de la reserva incompletos o inválidos"
)

// conflictMessages texto para cada motivo de rechazo
var conflictMessages = map[domain.ConflictReason]string{
	domain.ConflictPendingExists:    "ya existe una solicitud pendiente de aprobación en ese horario",
	domain.ConflictSamePriority:     "el horario está ocupado por una reserva de la misma prioridad; requiere conciliación",
	domain.ConflictExternalAudience: "el horario está ocupado por un evento con público externo; requiere conciliación",
	domain.ConflictLowPriority:      "el horario está ocupado por una reserva de mayor prioridad",
	domain.ConflictRestrictedWindow: "el horario está dentro de una ventana restringida del salón",
	domain.ConflictOutOfHours:       "el horario está fuera del horario de operación",
}

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	caller := middleware.CallerEmail(r.Context())

	var req CreateReservationRequest
	if err := handlers.DecodeAndValidate(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: caller=%s, error=%v", caller, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(caller))
	if err != nil {
		if reason, ok := domain.ConflictReasonOf(err); ok {
			h.logger.Warn("POST /reservations - Rejected: salon=%s, date=%s, start=%s, reason=%s, caller=%s",
				req.SalonID, req.Date, req.StartTime, reason, caller)
			handlers.RespondConflict(w, conflictMessages[reason], string(reason))
			return
		}

		switch {
		case errors.Is(err, createReservation.ErrSalonNotFound):
			h.logger.Warn("POST /reservations - Salon not found: salon=%s", req.SalonID)
			handlers.RespondNotFound(w, msgSalonNotFound)

		case errors.Is(err, createReservation.ErrSalonDisabled):
			h.logger.Warn("POST /reservations - Salon disabled: salon=%s", req.SalonID)
			handlers.RespondBadRequest(w, msgSalonDisabled)

		case errors.Is(err, createReservation.ErrInvalidCapacity):
			h.logger.Warn("POST /reservations - Invalid capacity: salon=%s, capacity=%d", req.SalonID, req.Capacity)
			handlers.RespondBadRequest(w, msgInvalidCapacity)

		case errors.Is(err, createReservation.ErrInvalidDate):
			h.logger.Warn("POST /reservations - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createReservation.ErrInvalidTime):
			h.logger.Warn("POST /reservations - Invalid start time: %q", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTime)

		case errors.Is(err, createReservation.ErrInvalidAudience):
			h.logger.Warn("POST /reservations - Invalid audience: %q", req.Audience)
			handlers.RespondBadRequest(w, msgInvalidAudience)

		case errors.Is(err, domain.ErrValidation):
			h.logger.Warn("POST /reservations - Invalid input: caller=%s, error=%v", caller, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: salon=%s, caller=%s, error=%v",
				req.SalonID, caller, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: id=%s, status=%s, displaced=%d",
		result.Reservation.ID, result.Reservation.Status, len(result.Displaced))
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
