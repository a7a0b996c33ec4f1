package approve_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
	approveReservation "github.com/m04kA/SMC-SalonService/internal/usecase/approve_reservation"
)

const (
	msgNotFound         = "reserva no encontrada"
	msgAlreadyCancelled = "la reserva ya está cancelada"
	msgForbidden        = "no tiene permisos para aprobar esta reserva"
)

// ApproveResponse approved reservation; alreadyApproved marks a repeated call
type ApproveResponse struct {
	Reservation     *models.ReservationResponse `json:"reservation"`
	AlreadyApproved bool                        `json:"alreadyApproved"`
}

type Handler struct {
	useCase ApproveReservationUseCase
	logger  Logger
}

func NewHandler(useCase ApproveReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/reservations/{id}/approve
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	caller := middleware.CallerEmail(r.Context())

	result, err := h.useCase.Execute(r.Context(), &approveReservation.Request{
		ReservationID: id,
		CallerEmail:   caller,
	})
	if err != nil {
		switch {
		case errors.Is(err, approveReservation.ErrReservationNotFound):
			h.logger.Warn("POST /admin/reservations/{id}/approve - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, approveReservation.ErrAlreadyCancelled):
			h.logger.Warn("POST /admin/reservations/{id}/approve - Already cancelled: id=%s", id)
			handlers.RespondConflict(w, msgAlreadyCancelled, handlers.ReasonAlreadyTerminal)

		case errors.Is(err, approveReservation.ErrNotAdmin), errors.Is(err, approveReservation.ErrOutOfScope):
			h.logger.Warn("POST /admin/reservations/{id}/approve - Forbidden: id=%s, caller=%s", id, caller)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("POST /admin/reservations/{id}/approve - Failed to approve: id=%s, error=%v", id, err)
			handlers.RespondDomainError(w, err, "")
		}
		return
	}

	h.logger.Info("POST /admin/reservations/{id}/approve - Approved: id=%s, by=%s, already=%t", id, caller, result.AlreadyApproved)
	handlers.RespondJSON(w, http.StatusOK, &ApproveResponse{
		Reservation:     models.FromDomain(result.Reservation),
		AlreadyApproved: result.AlreadyApproved,
	})
}
