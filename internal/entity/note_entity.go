package entity

import (
	"time"

	"activitylog-be/pkg/timeline"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID
	Timestamp   time.Time
	Content     string
	LogicalDate timeline.Date
	CreatedAt   time.Time
}
