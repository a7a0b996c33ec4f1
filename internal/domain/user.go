package domain

import "strings"

// Role user role
type Role string

const (
	RoleNone      Role = ""
	RoleRequester Role = "SOLICITANTE"
	RoleAdmin     Role = "ADMIN"
)

// UserStatus user lifecycle state
type UserStatus string

const (
	UserStatusNone     UserStatus = ""
	UserStatusPending  UserStatus = "PENDIENTE"
	UserStatusActive   UserStatus = "ACTIVO"
	UserStatusInactive UserStatus = "INACTIVO"
)

// User member of the organization, keyed by email
type User struct {
	Email          string
	Name           string
	Department     string
	Role           Role
	Priority       int
	SalonWhitelist []string // upper-cased salon ids; empty = priority applies everywhere
	Status         UserStatus
	Extension      string
	TenantID       string

	// Exists false for callers without a stored row
	Exists bool
}

// AnonymousUser placeholder for an authenticated email with no stored row
func AnonymousUser(email string) *User {
	return &User{
		Email:    strings.ToLower(strings.TrimSpace(email)),
		TenantID: SuperScope,
	}
}

// ParseSalonWhitelist splits on ";", trims, upper-cases and removes duplicates
func ParseSalonWhitelist(raw string) []string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	for _, token := range strings.Split(text, ";") {
		token = strings.ToUpper(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		if _, dup := seen[token]; dup {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

// JoinSalonWhitelist inverse of ParseSalonWhitelist
func JoinSalonWhitelist(codes []string) string {
	return strings.Join(ParseSalonWhitelist(strings.Join(codes, ";")), ";")
}

// BasePriority stored priority; an ADMIN without one gets AdminDefaultPriority
func (u *User) BasePriority() int {
	if u == nil {
		return 0
	}
	if u.Role == RoleAdmin && u.Priority == 0 {
		return AdminDefaultPriority
	}
	return u.Priority
}

// EffectivePriority priority that applies to salonID
func (u *User) EffectivePriority(salonID string) int {
	base := u.BasePriority()
	if base <= 0 {
		return base
	}
	target := strings.ToUpper(strings.TrimSpace(salonID))
	if target == "" || len(u.SalonWhitelist) == 0 {
		return base
	}
	for _, code := range u.SalonWhitelist {
		if strings.ToUpper(code) == target {
			return base
		}
	}
	return 0
}

func (u *User) IsActive() bool {
	return u != nil && u.Status == UserStatusActive
}

// IsActiveAdmin role ADMIN and state ACTIVO
func (u *User) IsActiveAdmin() bool {
	return u.IsActive() && u.Role == RoleAdmin
}

// Scope normalized tenant scope of the user
func (u *User) Scope() string {
	if u == nil {
		return SuperScope
	}
	return NormalizeTenantID(u.TenantID)
}

// IsGeneralAdmin active admin of the super-scope
func (u *User) IsGeneralAdmin() bool {
	return u.IsActiveAdmin() && u.Scope() == SuperScope
}
