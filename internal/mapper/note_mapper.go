package mapper

import (
	"activitylog-be/internal/entity"
	"activitylog-be/internal/model"
	"activitylog-be/pkg/timeline"
)

type NoteMapper struct{}

func NewNoteMapper() *NoteMapper {
	return &NoteMapper{}
}

func (m *NoteMapper) ToEntity(n *model.Note) *entity.Note {
	if n == nil {
		return nil
	}
	return &entity.Note{
		Id:          n.Id,
		Timestamp:   n.Timestamp,
		Content:     n.Content,
		LogicalDate: timeline.DateOf(n.LogicalDate.UTC()),
		CreatedAt:   n.CreatedAt,
	}
}

func (m *NoteMapper) ToModel(n *entity.Note) *model.Note {
	if n == nil {
		return nil
	}
	return &model.Note{
		Id:          n.Id,
		Timestamp:   n.Timestamp,
		Content:     n.Content,
		LogicalDate: n.LogicalDate.Time(),
		CreatedAt:   n.CreatedAt,
	}
}

func (m *NoteMapper) ToEntities(notes []*model.Note) []*entity.Note {
	entities := make([]*entity.Note, len(notes))
	for i, n := range notes {
		entities[i] = m.ToEntity(n)
	}
	return entities
}
