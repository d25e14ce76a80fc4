package dto

import (
	"encoding/json"

	"activitylog-be/pkg/timeline"
)

type SettingsResponse struct {
	DayBoundaryHour int             `json:"day_boundary_hour"`
	CategoryRules   []timeline.Rule `json:"category_rules"`
	FocusCategories []string        `json:"focus_categories"`
}

type UpdateSettingRequest struct {
	// Key comes from the URL path; Value is validated per key by the
	// settings service before anything is written.
	Value json.RawMessage `json:"value" validate:"required"`
}
