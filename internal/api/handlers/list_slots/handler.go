package list_slots

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	listSlots "github.com/m04kA/SMC-SalonService/internal/usecase/list_slots"
)

const (
	msgInvalidDate     = "fecha inválida, se espera YYYY-MM-DD"
	msgInvalidDuration = "duración inválida"
)

type Handler struct {
	useCase ListSlotsUseCase
	logger  Logger
}

func NewHandler(useCase ListSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/slots?date=YYYY-MM-DD&duration=60
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	date, _, err := handlers.QueryDate(r, "date", true)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/slots - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/slots - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &listSlots.Request{
		Date:            date,
		SalonID:         salonID,
		DurationMinutes: duration,
		RequesterEmail:  middleware.CallerEmail(r.Context()),
	})
	if err != nil {
		h.logger.Error("GET /salons/{id}/slots - Failed to list slots: salon=%s, error=%v", salonID, err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	h.logger.Info("GET /salons/{id}/slots - %d slot(s): salon=%s, date=%s", len(result.Slots), salonID, date.Format("2006-01-02"))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
