package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

func TestLockKeys(t *testing.T) {
	date := time.Date(2026, 5, 4, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, "salon:A:2026-05-04", SalonDateLockKey("A", date))
	assert.Equal(t, "concierge:C-00001:2026-05-04", ConciergeDateLockKey("C-00001", date))
}

func TestStatusStrings(t *testing.T) {
	got := statusStrings([]domain.ReservationStatus{domain.StatusApproved, domain.StatusPending})
	assert.Equal(t, []string{"APROBADA", "PENDIENTE"}, got)
}
