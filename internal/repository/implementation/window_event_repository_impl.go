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

type WindowEventRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EventMapper
}

func NewWindowEventRepository(db *gorm.DB) contract.WindowEventRepository {
	return &WindowEventRepositoryImpl{
		db:     db,
		mapper: mapper.NewEventMapper(),
	}
}

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *WindowEventRepositoryImpl) Upsert(ctx context.Context, event *entity.WindowEvent) error {
	m := r.mapper.ToWindowModel(event)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "timestamp"}, {Name: "app_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"window_title", "browser_url"}),
	}).Create(m).Error
	if err != nil {
		return storageErr("upsert window event", err)
	}
	return nil
}

func (r *WindowEventRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WindowEvent, error) {
	var models []*model.WindowEvent
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, storageErr("list window events", err)
	}
	return r.mapper.ToWindowEntities(models), nil
}

func (r *WindowEventRepositoryImpl) FindLast(ctx context.Context) (*entity.WindowEvent, error) {
	var m model.WindowEvent
	err := r.db.WithContext(ctx).Order("timestamp DESC").First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, storageErr("find last window event", err)
	}
	return r.mapper.ToWindowEntity(&m), nil
}

func (r *WindowEventRepositoryImpl) DistinctDates(ctx context.Context) ([]timeline.Date, error) {
	var dates []time.Time
	err := r.db.WithContext(ctx).
		Model(&model.WindowEvent{}).
		Distinct("logical_date").
		Order("logical_date DESC").
		Pluck("logical_date", &dates).Error
	if err != nil {
		return nil, storageErr("list window event dates", err)
	}

	out := make([]timeline.Date, len(dates))
	for i, d := range dates {
		out[i] = timeline.DateOf(d.UTC())
	}
	return out, nil
}

// CountDistinctApps excludes the locked-screen sentinel: it is a
// session marker, not an app, and the derived rollup already leaves it
// out, so both day views must agree.
func (r *WindowEventRepositoryImpl) CountDistinctApps(ctx context.Context, date timeline.Date) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.WindowEvent{}).
		Where("logical_date = ?", date.Time()).
		Where("app_name <> ?", timeline.LockedScreenApp).
		Distinct("app_name").
		Count(&count).Error
	if err != nil {
		return 0, storageErr("count distinct apps", err)
	}
	return count, nil
}

func (r *WindowEventRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.WindowEvent{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, storageErr("count window events", err)
	}
	return count, nil
}
