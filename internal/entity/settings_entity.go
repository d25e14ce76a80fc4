package entity

import "activitylog-be/pkg/timeline"

// Setting keys as persisted in the settings collection.
const (
	SettingDayBoundaryHour = "day_boundary_hour"
	SettingCategoryRules   = "category_rules"
	SettingFocusCategories = "focus_categories"
	SettingSchemaVersion   = "schema_version"
)

// Settings is the aggregate of all user-editable settings. It is read
// fresh from the store on every aggregation call; rule edits must
// re-classify history immediately, so nothing here is ever cached
// across requests.
type Settings struct {
	DayBoundaryHour int             `json:"day_boundary_hour"`
	Rules           []timeline.Rule `json:"category_rules"`
	FocusCategories []string        `json:"focus_categories"`
}

// DefaultSettings mirrors the defaults seeded by the migrate command.
func DefaultSettings() Settings {
	return Settings{
		DayBoundaryHour: timeline.DefaultBoundaryHour,
		Rules:           []timeline.Rule{},
		FocusCategories: []string{"Coding", "Terminal"},
	}
}

// IsFocusCategory reports whether a classified category counts as deep
// work.
func (s Settings) IsFocusCategory(category string) bool {
	for _, c := range s.FocusCategories {
		if c == category {
			return true
		}
	}
	return false
}
