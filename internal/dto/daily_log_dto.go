package dto

import "time"

type SaveDailyLogRequest struct {
	Content string `json:"content"`
}

type DailyLogResponse struct {
	LogicalDate string    `json:"logical_date"`
	Content     string    `json:"content"`
	UpdatedAt   time.Time `json:"updated_at"`
}
