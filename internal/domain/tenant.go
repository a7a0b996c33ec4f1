package domain

import (
	"math"
	"strconv"
	"strings"
)

// NormalizeTenantID empty ids map to the super-scope, positive numbers are floored
func NormalizeTenantID(raw string) string {
	id := strings.TrimSpace(raw)
	if id == "" {
		return SuperScope
	}
	if n, err := strconv.ParseFloat(id, 64); err == nil && !math.IsInf(n, 0) && !math.IsNaN(n) && n > 0 {
		return strconv.FormatInt(int64(math.Floor(n)), 10)
	}
	return id
}

// InScope scope "1" sees every tenant, any other scope only its own
func InScope(scope, tenantID string) bool {
	s := NormalizeTenantID(scope)
	return s == SuperScope || s == NormalizeTenantID(tenantID)
}
