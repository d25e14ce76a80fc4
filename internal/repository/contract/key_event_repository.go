package contract

import (
	"context"

	"activitylog-be/internal/entity"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/pkg/timeline"
)

type KeyEventRepository interface {
	// UpsertAdd inserts the sample; on a timestamp conflict the counts
	// are ADDED, since the capture agent may flush twice into the same
	// wall-clock window.
	UpsertAdd(ctx context.Context, event *entity.KeyEvent) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeyEvent, error)
	// SumKeyCount totals key_count over the matching rows.
	SumKeyCount(ctx context.Context, specs ...specification.Specification) (int64, error)
	DistinctDates(ctx context.Context) ([]timeline.Date, error)
}
