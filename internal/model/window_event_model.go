package model

import "time"

// WindowEvent is one focus-change sample from the capture agent.
// (timestamp, app_name) is unique within the store; logical_date is
// tagged at write time with the boundary hour then in effect.
type WindowEvent struct {
	Timestamp   time.Time `gorm:"primaryKey;not null"`
	AppName     string    `gorm:"type:varchar(255);primaryKey;not null"`
	WindowTitle *string   `gorm:"type:text"`
	BrowserURL  *string   `gorm:"type:text"`
	LogicalDate time.Time `gorm:"type:date;not null;index"`
}

func (WindowEvent) TableName() string {
	return "window_events"
}
