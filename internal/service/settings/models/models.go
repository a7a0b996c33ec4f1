package models

// ConfigEntryResponse value of a key as seen from the caller's scope
type ConfigEntryResponse struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Scope       string `json:"scope"`
	Overridable bool   `json:"overridable"`
}

// SetConfigRequest запрос на изменение значения
type SetConfigRequest struct {
	Value *string `json:"value" validate:"required"`
}
