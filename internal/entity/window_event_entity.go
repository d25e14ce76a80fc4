package entity

import (
	"time"

	"activitylog-be/pkg/timeline"
)

type WindowEvent struct {
	Timestamp   time.Time
	AppName     string
	WindowTitle string
	BrowserURL  string
	LogicalDate timeline.Date
}
