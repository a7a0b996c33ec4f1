package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

func TestNewTenantSettings(t *testing.T) {
	tests := []struct {
		name                       string
		open, close                string
		min, step, max             string
		wantOpen, wantClose        types.TimeString
		wantMin, wantStep, wantMax int
	}{
		{
			name: "defaults", wantOpen: "07:00", wantClose: "20:00",
			wantMin: 30, wantStep: 30, wantMax: 240,
		},
		{
			name: "custom", open: "8:00", close: "18:30", min: "15", step: "15", max: "120",
			wantOpen: "08:00", wantClose: "18:30", wantMin: 15, wantStep: 15, wantMax: 120,
		},
		{
			name: "inverted window falls back", open: "18:00", close: "09:00",
			wantOpen: "07:00", wantClose: "20:00", wantMin: 30, wantStep: 30, wantMax: 240,
		},
		{
			name: "invalid numbers", min: "0", step: "x", max: "10",
			wantOpen: "07:00", wantClose: "20:00", wantMin: 30, wantStep: 30, wantMax: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTenantSettings(tt.open, tt.close, tt.min, tt.step, tt.max)
			assert.Equal(t, tt.wantOpen, s.Open)
			assert.Equal(t, tt.wantClose, s.Close)
			assert.Equal(t, tt.wantMin, s.DurationMin)
			assert.Equal(t, tt.wantStep, s.DurationStep)
			assert.Equal(t, tt.wantMax, s.DurationMax)
		})
	}
}

func TestTenantSettings_ClampDuration(t *testing.T) {
	s := DefaultTenantSettings()

	assert.Equal(t, 30, s.ClampDuration(0))
	assert.Equal(t, 30, s.ClampDuration(-5))
	assert.Equal(t, 30, s.ClampDuration(10))
	assert.Equal(t, 90, s.ClampDuration(90))
	assert.Equal(t, 240, s.ClampDuration(600))
}

func TestConfigScopeAndKeys(t *testing.T) {
	assert.Equal(t, "Config", ConfigScope(""))
	assert.Equal(t, "Config", ConfigScope("1"))
	assert.Equal(t, "Config4", ConfigScope("4"))
	assert.True(t, IsOverridableKey("horario_inicio"))
	assert.False(t, IsOverridableKey(KeyConciergeEmails))
	assert.Equal(t, []string{"a@x.com", "b@x.com"}, ParseEmailList("A@x.com; b@x.com,a@x.com"))
}
