package contract

import (
	"context"

	"activitylog-be/internal/entity"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/pkg/timeline"
)

type WindowEventRepository interface {
	// Upsert inserts the event; on a (timestamp, app_name) conflict the
	// title and URL are refreshed in place.
	Upsert(ctx context.Context, event *entity.WindowEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WindowEvent, error)
	// FindLast returns the most recent event, nil when the store is
	// empty.
	FindLast(ctx context.Context) (*entity.WindowEvent, error)
	DistinctDates(ctx context.Context) ([]timeline.Date, error)
	// CountDistinctApps counts distinct app names for one logical day.
	CountDistinctApps(ctx context.Context, date timeline.Date) (int64, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
