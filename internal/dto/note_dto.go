package dto

import (
	"time"

	"github.com/google/uuid"
)

type AddNoteRequest struct {
	Timestamp time.Time `json:"timestamp" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	// LogicalDate optionally pins the note to a day; when empty it is
	// resolved from the timestamp with the current boundary hour.
	LogicalDate string `json:"logical_date"`
}

type AddNoteResponse struct {
	Id          uuid.UUID `json:"id"`
	LogicalDate string    `json:"logical_date"`
}

// NoteListResponse is one page of notes; Total counts the full match,
// not just the page.
type NoteListResponse struct {
	Total int64      `json:"total"`
	Notes []NoteItem `json:"notes"`
}
