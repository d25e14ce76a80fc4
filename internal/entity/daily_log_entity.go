package entity

import (
	"time"

	"activitylog-be/pkg/timeline"
)

type DailyLog struct {
	LogicalDate timeline.Date
	Content     string
	UpdatedAt   time.Time
}
