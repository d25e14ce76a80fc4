package implementation

import (
	"context"

	"activitylog-be/internal/entity"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/model"
	"activitylog-be/internal/repository/contract"
	"activitylog-be/pkg/timeline"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DailyLogRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.DailyLogMapper
}

func NewDailyLogRepository(db *gorm.DB) contract.DailyLogRepository {
	return &DailyLogRepositoryImpl{
		db:     db,
		mapper: mapper.NewDailyLogMapper(),
	}
}

func (r *DailyLogRepositoryImpl) Upsert(ctx context.Context, log *entity.DailyLog) error {
	m := r.mapper.ToModel(log)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "logical_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at"}),
	}).Create(m).Error
	if err != nil {
		return storageErr("upsert daily log", err)
	}
	return nil
}

func (r *DailyLogRepositoryImpl) FindByDate(ctx context.Context, date timeline.Date) (*entity.DailyLog, error) {
	var m model.DailyLog
	err := r.db.WithContext(ctx).Where("logical_date = ?", date.Time()).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, storageErr("find daily log", err)
	}
	return r.mapper.ToEntity(&m), nil
}
