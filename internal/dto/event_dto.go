package dto

import "time"

type RecordWindowEventRequest struct {
	Timestamp   time.Time `json:"timestamp" validate:"required"`
	AppName     string    `json:"app_name" validate:"required"`
	WindowTitle string    `json:"window_title"`
	BrowserURL  string    `json:"browser_url"`
}

type RecordKeySampleRequest struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	KeyCount  int       `json:"key_count" validate:"gte=0"`
}

type RecordEventResponse struct {
	LogicalDate string `json:"logical_date"`
}
