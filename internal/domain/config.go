package domain

import (
	"strconv"
	"strings"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Config keys
const (
	KeyAdminEmails           = "ADMIN_EMAILS"
	KeyOpenTime              = "HORARIO_INICIO"
	KeyCloseTime             = "HORARIO_FIN"
	KeyDurationMin           = "DURATION_MIN"
	KeyDurationStep          = "DURATION_STEP"
	KeyDurationMax           = "DURATION_MAX"
	KeyMailSenderName        = "MAIL_SENDER_NAME"
	KeyMailReplyTo           = "MAIL_REPLY_TO"
	KeyAdminContactName      = "ADMIN_CONTACT_NAME"
	KeyAdminContactEmail     = "ADMIN_CONTACT_EMAIL"
	KeyAdminContactExtension = "ADMIN_CONTACT_EXTENSION"
	KeyConciergeEmails       = "CONSERJERIA_EMAILS"
	KeyPublicWebappURL       = "PUBLIC_WEBAPP_URL"
)

// overridableKeys keys a tenant may override; everything else is read from the global scope
var overridableKeys = map[string]struct{}{
	KeyAdminEmails:           {},
	KeyOpenTime:              {},
	KeyCloseTime:             {},
	KeyDurationMin:           {},
	KeyDurationStep:          {},
	KeyDurationMax:           {},
	KeyMailSenderName:        {},
	KeyMailReplyTo:           {},
	KeyAdminContactName:      {},
	KeyAdminContactEmail:     {},
	KeyAdminContactExtension: {},
}

// IsOverridableKey reports whether tenants may override key
func IsOverridableKey(key string) bool {
	_, ok := overridableKeys[NormalizeConfigKey(key)]
	return ok
}

// NormalizeConfigKey keys are stored upper-cased
func NormalizeConfigKey(key string) string {
	return strings.ToUpper(strings.TrimSpace(key))
}

// ConfigScope store identifier of a tenant's config: "Config" for the super-scope, "Config<N>" otherwise
func ConfigScope(tenantID string) string {
	id := NormalizeTenantID(tenantID)
	if id == SuperScope {
		return "Config"
	}
	return "Config" + id
}

// ParseEmailList splits a ","/";" separated list, lower-cases and drops duplicates
func ParseEmailList(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\n'
	})
	seen := make(map[string]struct{}, len(fields))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		e := strings.ToLower(strings.TrimSpace(f))
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}

// TenantSettings operating window and duration bounds of a tenant
type TenantSettings struct {
	Open         types.TimeString
	Close        types.TimeString
	DurationMin  int
	DurationStep int
	DurationMax  int
}

// DefaultTenantSettings settings used when nothing is configured
func DefaultTenantSettings() TenantSettings {
	return TenantSettings{
		Open:         types.TimeString(DefaultOpenTime),
		Close:        types.TimeString(DefaultCloseTime),
		DurationMin:  DefaultDurationMin,
		DurationStep: DefaultDurationStep,
		DurationMax:  DefaultDurationMax,
	}
}

// NewTenantSettings builds settings from raw config values.
// Invalid values fall back to defaults; a window with close <= open falls back as a whole.
func NewTenantSettings(open, close, durMin, durStep, durMax string) TenantSettings {
	s := DefaultTenantSettings()

	o, errOpen := types.NewTimeStringFromString(strings.TrimSpace(open))
	c, errClose := types.NewTimeStringFromString(strings.TrimSpace(close))
	if errOpen == nil {
		s.Open = o
	}
	if errClose == nil {
		s.Close = c
	}
	if s.Close.Minutes() <= s.Open.Minutes() {
		s.Open = types.TimeString(DefaultOpenTime)
		s.Close = types.TimeString(DefaultCloseTime)
	}

	s.DurationMin = parsePositive(durMin, DefaultDurationMin)
	s.DurationStep = parsePositive(durStep, DefaultDurationStep)
	s.DurationMax = parsePositive(durMax, DefaultDurationMax)
	if s.DurationMax < s.DurationMin {
		s.DurationMax = s.DurationMin
	}
	return s
}

func parsePositive(raw string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// Window operating window as an interval
func (s TenantSettings) Window() Interval {
	return IntervalOf(s.Open, s.Close)
}

// ClampDuration forces the requested duration into [min, max]; anything below 1 becomes min
func (s TenantSettings) ClampDuration(requested int) int {
	if requested < 1 || requested < s.DurationMin {
		return s.DurationMin
	}
	if requested > s.DurationMax {
		return s.DurationMax
	}
	return requested
}
