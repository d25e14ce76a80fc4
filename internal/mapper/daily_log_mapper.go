package mapper

import (
	"activitylog-be/internal/entity"
	"activitylog-be/internal/model"
	"activitylog-be/pkg/timeline"
)

type DailyLogMapper struct{}

func NewDailyLogMapper() *DailyLogMapper {
	return &DailyLogMapper{}
}

func (m *DailyLogMapper) ToEntity(d *model.DailyLog) *entity.DailyLog {
	if d == nil {
		return nil
	}
	return &entity.DailyLog{
		LogicalDate: timeline.DateOf(d.LogicalDate.UTC()),
		Content:     d.Content,
		UpdatedAt:   d.UpdatedAt,
	}
}

func (m *DailyLogMapper) ToModel(d *entity.DailyLog) *model.DailyLog {
	if d == nil {
		return nil
	}
	return &model.DailyLog{
		LogicalDate: d.LogicalDate.Time(),
		Content:     d.Content,
		UpdatedAt:   d.UpdatedAt,
	}
}
