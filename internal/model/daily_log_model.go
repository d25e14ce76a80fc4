package model

import "time"

// DailyLog is the free-form journal entry for one logical day.
type DailyLog struct {
	LogicalDate time.Time `gorm:"type:date;primaryKey"`
	Content     string    `gorm:"type:text"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (DailyLog) TableName() string {
	return "daily_logs"
}
