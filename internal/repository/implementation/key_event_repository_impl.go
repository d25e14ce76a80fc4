package implementation

import (
	"context"
	"time"

	"activitylog-be/internal/entity"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/model"
	"activitylog-be/internal/repository/contract"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/pkg/timeline"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type KeyEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewKeyEventRepository(db *gorm.DB) contract.KeyEventRepository {
	return &KeyEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func (r *KeyEventRepositoryImpl) UpsertAdd(ctx context.Context, event *entity.KeyEvent) error {
	m := r.mapper.ToKeyModel(event)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "timestamp"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"key_count": gorm.Expr("key_events.key_count + excluded.key_count"),
		}),
	}).Create(m).Error
	if err != nil {
		return storageErr("upsert key sample", err)
	}
	return nil
}

func (r *KeyEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KeyEvent, error) {
	var models []*model.KeyEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, storageErr("list key samples", err)
	}
	return r.mapper.ToKeyEntities(models), nil
}

func (r *KeyEventRepositoryImpl) SumKeyCount(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var total int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.KeyEvent{}), specs...)
	if err := query.Select("COALESCE(SUM(key_count), 0)").Scan(&total).Error; err != nil {
		return 0, storageErr("sum key samples", err)
	}
	return total, nil
}

func (r *KeyEventRepositoryImpl) DistinctDates(ctx context.Context) ([]timeline.Date, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.KeyEvent{}).
		Distinct("logical_date").
		Order("logical_date DESC").
		Pluck("logical_date", &dates).Error
	if err != nil {
		return nil, storageErr("list key sample dates", err)
	}

	out := make([]timeline.Date, len(dates))
	for i, d := range dates {
		out[i] = timeline.DateOf(d.UTC())
	}
	return out, nil
}
