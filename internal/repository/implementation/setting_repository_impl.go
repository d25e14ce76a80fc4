package implementation

import (
	"context"

	"activitylog-be/internal/model"
	"activitylog-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingRepositoryImpl struct {
	db *gorm.DB
}

func NewSettingRepository(db *gorm.DB) contract.SettingRepository {
	return &SettingRepositoryImpl{db: db}
}

func (r *SettingRepositoryImpl) Get(ctx context.Context, key string) (datatypes.JSON, error) {
	var m model.Setting
	err := r.db.WithContext(ctx).Where("key = ?", key).First(&m).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, storageErr("get setting", err)
	}
	return m.Value, nil
}

func (r *SettingRepositoryImpl) Set(ctx context.Context, key string, value datatypes.JSON) error {
	m := model.Setting{Key: key, Value: value}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&m).Error
	if err != nil {
		return storageErr("set setting", err)
	}
	return nil
}
