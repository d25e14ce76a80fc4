package dto

import "time"

type WindowEventItem struct {
	Timestamp   time.Time `json:"timestamp"`
	AppName     string    `json:"app_name"`
	WindowTitle string    `json:"window_title,omitempty"`
	BrowserURL  string    `json:"browser_url,omitempty"`
}

type KeyEventItem struct {
	Timestamp time.Time `json:"timestamp"`
	KeyCount  int       `json:"key_count"`
}

type NoteItem struct {
	Id        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Content   string    `json:"content"`
}

type DaySummaryResponse struct {
	LogicalDate  string            `json:"logical_date"`
	WindowEvents []WindowEventItem `json:"window_events"`
	KeyEvents    []KeyEventItem    `json:"key_events"`
	Notes        []NoteItem        `json:"notes"`
	DailyLog     *string           `json:"daily_log"`
}

type AppUsageItem struct {
	AppName         string `json:"app_name"`
	Category        string `json:"category"`
	DurationSeconds int64  `json:"duration_seconds"`
	EventCount      int    `json:"event_count"`
}

// AppHistoryResponse is one page of a single app's focus samples;
// TotalEvents counts the full match, not just the page.
type AppHistoryResponse struct {
	AppName     string            `json:"app_name"`
	TotalEvents int64             `json:"total_events"`
	Events      []WindowEventItem `json:"events"`
}

type OverviewItem struct {
	LogicalDate string `json:"logical_date"`
	TotalKeys   int    `json:"total_keys"`
	UniqueApps  int    `json:"unique_apps"`
}

// DayRollup is one logical day of the classified rollup. Days without
// data are zero-filled rather than omitted so range charts render
// without gaps; a day that failed to compute carries Error and stays
// zero-filled.
type DayRollup struct {
	LogicalDate       string           `json:"logical_date"`
	TotalKeystrokes   int              `json:"total_keystrokes"`
	UniqueAppCount    int              `json:"unique_app_count"`
	CategoryDurations map[string]int64 `json:"category_durations"`
	FocusSeconds      int64            `json:"focus_seconds"`
	Error             string           `json:"error,omitempty"`
}

// RangeTotals sums the per_day entries actually returned. When limit
// truncates the requested range the totals cover the returned page, not
// the full range.
type RangeTotals struct {
	Days              int              `json:"days"`
	TotalKeystrokes   int              `json:"total_keystrokes"`
	CategoryDurations map[string]int64 `json:"category_durations"`
	FocusSeconds      int64            `json:"focus_seconds"`
}

type RollupResponse struct {
	PerDay      []DayRollup `json:"per_day"`
	RangeTotals RangeTotals `json:"range_totals"`
}
