package check_slot

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	checkSlot "github.com/m04kA/SMC-SalonService/internal/usecase/check_slot"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

const (
	msgInvalidDate     = "fecha inválida, se espera YYYY-MM-DD"
	msgInvalidTime     = "hora de inicio inválida, se espera HH:MM"
	msgInvalidDuration = "duración inválida"
	msgSalonNotFound   = "salón no encontrado"
)

type Handler struct {
	useCase CheckSlotUseCase
	logger  Logger
}

func NewHandler(useCase CheckSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/salons/{salonId}/check?date=YYYY-MM-DD&start=HH:MM&duration=60
// A rejected interval is a normal 200 answer with available=false and a reason.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	salonID := mux.Vars(r)["salonId"]

	date, _, err := handlers.QueryDate(r, "date", true)
	if err != nil {
		h.logger.Warn("GET /salons/{id}/check - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	start, err := types.NewTimeStringFromString(strings.TrimSpace(r.URL.Query().Get("start")))
	if err != nil {
		h.logger.Warn("GET /salons/{id}/check - Invalid start: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	duration, err := handlers.QueryInt(r, "duration")
	if err != nil {
		h.logger.Warn("GET /salons/{id}/check - Invalid duration: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDuration)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkSlot.Request{
		Date:            date,
		SalonID:         salonID,
		Start:           start,
		DurationMinutes: duration,
		RequesterEmail:  middleware.CallerEmail(r.Context()),
	})
	if err != nil {
		if errors.Is(err, checkSlot.ErrSalonNotFound) {
			h.logger.Warn("GET /salons/{id}/check - Salon not found: salon=%s", salonID)
			handlers.RespondNotFound(w, msgSalonNotFound)
			return
		}
		h.logger.Error("GET /salons/{id}/check - Failed to check slot: salon=%s, error=%v", salonID, err)
		handlers.RespondDomainError(w, err, "")
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
