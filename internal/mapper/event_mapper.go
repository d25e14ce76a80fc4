package mapper

import (
	"activitylog-be/internal/entity"
	"activitylog-be/internal/model"
	"activitylog-be/pkg/timeline"
)

type EventMapper struct{}

func NewEventMapper() *EventMapper {
	return &EventMapper{}
}

func (m *EventMapper) ToWindowEntity(w *model.WindowEvent) *entity.WindowEvent {
	if w == nil {
		return nil
	}

	var title, url string
	if w.WindowTitle != nil {
		title = *w.WindowTitle
	}
	if w.BrowserURL != nil {
		url = *w.BrowserURL
	}

	return &entity.WindowEvent{
		Timestamp:   w.Timestamp,
		AppName:     w.AppName,
		WindowTitle: title,
		BrowserURL:  url,
		LogicalDate: timeline.DateOf(w.LogicalDate.UTC()),
	}
}

func (m *EventMapper) ToWindowModel(w *entity.WindowEvent) *model.WindowEvent {
	if w == nil {
		return nil
	}

	var title, url *string
	if w.WindowTitle != "" {
		t := w.WindowTitle
		title = &t
	}
	if w.BrowserURL != "" {
		u := w.BrowserURL
		url = &u
	}

	return &model.WindowEvent{
		Timestamp:   w.Timestamp,
		AppName:     w.AppName,
		WindowTitle: title,
		BrowserURL:  url,
		LogicalDate: w.LogicalDate.Time(),
	}
}

func (m *EventMapper) ToWindowEntities(ws []*model.WindowEvent) []*entity.WindowEvent {
	entities := make([]*entity.WindowEvent, len(ws))
	for i, w := range ws {
		entities[i] = m.ToWindowEntity(w)
	}
	return entities
}

func (m *EventMapper) ToKeyEntity(k *model.KeyEvent) *entity.KeyEvent {
	if k == nil {
		return nil
	}
	return &entity.KeyEvent{
		Timestamp:   k.Timestamp,
		KeyCount:    k.KeyCount,
		LogicalDate: timeline.DateOf(k.LogicalDate.UTC()),
	}
}

func (m *EventMapper) ToKeyModel(k *entity.KeyEvent) *model.KeyEvent {
	if k == nil {
		return nil
	}
	return &model.KeyEvent{
		Timestamp:   k.Timestamp,
		KeyCount:    k.KeyCount,
		LogicalDate: k.LogicalDate.Time(),
	}
}

func (m *EventMapper) ToKeyEntities(ks []*model.KeyEvent) []*entity.KeyEvent {
	entities := make([]*entity.KeyEvent, len(ks))
	for i, k := range ks {
		entities[i] = m.ToKeyEntity(k)
	}
	return entities
}

// ToFocusEvents converts stored window events into the shape the
// duration deriver consumes.
func (m *EventMapper) ToFocusEvents(ws []*entity.WindowEvent) []timeline.FocusEvent {
	events := make([]timeline.FocusEvent, len(ws))
	for i, w := range ws {
		events[i] = timeline.FocusEvent{
			Timestamp:   w.Timestamp,
			AppName:     w.AppName,
			WindowTitle: w.WindowTitle,
			BrowserURL:  w.BrowserURL,
		}
	}
	return events
}
