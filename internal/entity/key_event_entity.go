package entity

import (
	"time"

	"activitylog-be/pkg/timeline"
)

type KeyEvent struct {
	Timestamp   time.Time
	KeyCount    int
	LogicalDate timeline.Date
}
