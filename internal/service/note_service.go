package service

import (
	"context"
	"time"

	"activitylog-be/internal/config"
	"activitylog-be/internal/dto"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/events"
	"activitylog-be/pkg/timeline"

	"github.com/google/uuid"
)

// DefaultNoteListLimit bounds a note-listing page when the caller gives
// no limit.
const DefaultNoteListLimit = 100

type INoteService interface {
	Add(ctx context.Context, req *dto.AddNoteRequest) (*dto.AddNoteResponse, error)
	List(ctx context.Context, from, to string, limit, offset int) (*dto.NoteListResponse, error)
}

type noteService struct {
	uowFactory unitofwork.RepositoryFactory
	settings   ISettingsService
	publisher  IPublisherService
	tracking   config.TrackingConfig
	logger     logger.ILogger
}

func NewNoteService(
	uowFactory unitofwork.RepositoryFactory,
	settings ISettingsService,
	publisher IPublisherService,
	tracking config.TrackingConfig,
	sysLogger logger.ILogger,
) INoteService {
	return &noteService{
		uowFactory: uowFactory,
		settings:   settings,
		publisher:  publisher,
		tracking:   tracking,
		logger:     sysLogger,
	}
}

// Add records a timestamped annotation. The caller may pin the note to
// an explicit logical date ("this belongs to yesterday no matter when I
// typed it"); otherwise the date is resolved from the timestamp.
func (s *noteService) Add(ctx context.Context, req *dto.AddNoteRequest) (*dto.AddNoteResponse, error) {
	var logicalDate timeline.Date
	if req.LogicalDate != "" {
		parsed, err := timeline.ParseDate(req.LogicalDate)
		if err != nil {
			return nil, apperror.NewValidation("logical_date must be YYYY-MM-DD")
		}
		logicalDate = parsed
	} else {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return nil, err
		}
		logicalDate = timeline.Resolve(req.Timestamp, settings.DayBoundaryHour, s.tracking.Location)
	}

	note := &entity.Note{
		Id:          uuid.New(),
		Timestamp:   req.Timestamp.UTC(),
		Content:     req.Content,
		LogicalDate: logicalDate,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		return nil, err
	}

	evt := events.BaseEvent{
		Type: events.TypeNoteAdded,
		Data: map[string]interface{}{
			"id":           note.Id.String(),
			"logical_date": string(logicalDate),
		},
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEvent(ctx, evt); err != nil {
		s.logger.Warn("NoteService", "Failed to publish live event", map[string]interface{}{"error": err.Error()})
	}

	return &dto.AddNoteResponse{Id: note.Id, LogicalDate: string(logicalDate)}, nil
}

// List returns notes newest first across a logical-date range. Either
// bound may be absent, leaving that side open; total counts the whole
// match so clients can page with offset.
func (s *noteService) List(ctx context.Context, from, to string, limit, offset int) (*dto.NoteListResponse, error) {
	if limit <= 0 {
		limit = DefaultNoteListLimit
	}
	if offset < 0 {
		offset = 0
	}

	dateRange, err := parseOpenRange(from, to)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.NoteRepository().Count(ctx, dateRange)
	if err != nil {
		return nil, err
	}
	notes, err := uow.NoteRepository().FindAll(ctx,
		dateRange,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.NoteListResponse{
		Total: total,
		Notes: make([]dto.NoteItem, len(notes)),
	}
	for i, n := range notes {
		resp.Notes[i] = dto.NoteItem{
			Id:        n.Id.String(),
			Timestamp: n.Timestamp,
			Content:   n.Content,
		}
	}

	return resp, nil
}
