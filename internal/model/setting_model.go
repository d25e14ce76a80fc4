package model

import (
	"time"

	"gorm.io/datatypes"
)

// Setting is one key of the settings collection. Values are structured
// JSON (rule lists, the boundary hour, the focus-category set).
type Setting struct {
	Key       string         `gorm:"type:varchar(64);primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (Setting) TableName() string {
	return "settings"
}
