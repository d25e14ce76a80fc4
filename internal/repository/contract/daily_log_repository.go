package contract

import (
	"context"

	"activitylog-be/internal/entity"
	"activitylog-be/pkg/timeline"
)

type DailyLogRepository interface {
	// Upsert overwrites the log for its logical date.
	Upsert(ctx context.Context, log *entity.DailyLog) error
	// FindByDate returns nil when no log exists for the date.
	FindByDate(ctx context.Context, date timeline.Date) (*entity.DailyLog, error)
}
