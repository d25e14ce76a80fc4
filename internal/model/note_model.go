package model

import (
	"time"

	"github.com/google/uuid"
)

type Note struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Timestamp   time.Time `gorm:"not null;uniqueIndex"`
	Content     string    `gorm:"type:text;not null"`
	LogicalDate time.Time `gorm:"type:date;not null;index"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
}

func (Note) TableName() string {
	return "notes"
}
