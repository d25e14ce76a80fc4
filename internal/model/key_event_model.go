package model

import "time"

// KeyEvent is a keystroke count over one capture window. Counts only,
// never key values.
type KeyEvent struct {
	Timestamp   time.Time `gorm:"primaryKey;not null"`
	KeyCount    int       `gorm:"not null"`
	LogicalDate time.Time `gorm:"type:date;not null;index"`
}

func (KeyEvent) TableName() string {
	return "key_events"
}
