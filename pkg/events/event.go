package events

import "time"

const (
	TypeWindowEventRecorded = "WINDOW_EVENT_RECORDED"
	TypeKeySampleRecorded   = "KEY_SAMPLE_RECORDED"
	TypeNoteAdded           = "NOTE_ADDED"
)

// BaseEvent is the payload published on the in-process bus whenever the
// store changes. The live websocket consumer forwards these to
// connected UIs.
type BaseEvent struct {
	Type       string                 `json:"type"`
	Data       map[string]interface{} `json:"data"`
	OccurredAt time.Time              `json:"occurred_at"`
}
