package get_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations"
)

const msgNotFound = "reserva no encontrada"

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

// Handle GET /api/v1/reservations/token/{token}
// Публичный endpoint - страница отмены по ссылке из письма
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	token := mux.Vars(r)["token"]

	result, err := h.service.GetByToken(r.Context(), token)
	if err != nil {
		if errors.Is(err, reservations.ErrReservationNotFound) {
			h.logger.Warn("GET /reservations/token/{token} - Reservation not found")
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /reservations/token/{token} - Failed to get reservation: %v", err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /reservations/token/{token} - Reservation retrieved: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
