package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	cancelReservation "github.com/m04kA/SMC-SalonService/internal/usecase/cancel_reservation"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgNotFound           = "reserva no encontrada"
	msgAlreadyCancelled   = "la reserva ya está cancelada"
	msgTooLate            = "las reservas aprobadas solo pueden cancelarse hasta 30 minutos antes del inicio"
	msgForbidden          = "no tiene permisos para cancelar esta reserva"
)

type Handler struct {
	useCase CancelReservationUseCase
	logger  Logger
}

func NewHandler(useCase CancelReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// HandleByToken POST /api/v1/reservations/token/{token}/cancel
// Публичный endpoint - авторизация опциональна
func (h *Handler) HandleByToken(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	var req CancelReservationRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/token/{token}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteByToken(r.Context(), &cancelReservation.TokenRequest{
		Token:       token,
		CallerEmail: middleware.CallerEmail(r.Context()),
		Reason:      req.Reason,
	})
	if err != nil {
		h.respondError(w, "POST /reservations/token/{token}/cancel", err)
		return
	}

	h.logger.Info("POST /reservations/token/{token}/cancel - Reservation cancelled: id=%s", result.Reservation.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleByAdmin POST /api/v1/admin/reservations/{id}/cancel
func (h *Handler) HandleByAdmin(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	caller := middleware.CallerEmail(r.Context())

	var req CancelReservationRequest
	if err := handlers.DecodeOptionalJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/reservations/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteByAdmin(r.Context(), &cancelReservation.AdminRequest{
		ReservationID: id,
		CallerEmail:   caller,
		Reason:        req.Reason,
	})
	if err != nil {
		h.respondError(w, "POST /admin/reservations/{id}/cancel", err)
		return
	}

	h.logger.Info("POST /admin/reservations/{id}/cancel - Reservation cancelled: id=%s, by=%s", id, caller)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

func (h *Handler) respondError(w http.ResponseWriter, route string, err error) {
	switch {
	case errors.Is(err, cancelReservation.ErrReservationNotFound):
		h.logger.Warn("%s - Reservation not found", route)
		handlers.RespondNotFound(w, msgNotFound)

	case errors.Is(err, cancelReservation.ErrAlreadyCancelled):
		h.logger.Warn("%s - Already cancelled", route)
		handlers.RespondConflict(w, msgAlreadyCancelled, handlers.ReasonAlreadyTerminal)

	case errors.Is(err, cancelReservation.ErrTooLate):
		h.logger.Warn("%s - Too late to cancel", route)
		handlers.RespondBadRequest(w, msgTooLate)

	case errors.Is(err, cancelReservation.ErrNotAdmin), errors.Is(err, cancelReservation.ErrOutOfScope):
		h.logger.Warn("%s - Forbidden: %v", route, err)
		handlers.RespondForbidden(w, msgForbidden)

	default:
		h.logger.Error("%s - Failed to cancel reservation: %v", route, err)
		handlers.RespondDomainError(w, err, "")
	}
}
