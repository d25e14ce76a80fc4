package service

import (
	"context"
	"time"

	"activitylog-be/internal/config"
	"activitylog-be/internal/dto"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/events"
	"activitylog-be/pkg/timeline"
	"activitylog-be/pkg/utils"
)

type IEventService interface {
	RecordWindowEvent(ctx context.Context, req *dto.RecordWindowEventRequest) (*dto.RecordEventResponse, error)
	RecordKeySample(ctx context.Context, req *dto.RecordKeySampleRequest) (*dto.RecordEventResponse, error)
	// LastWindowEvent returns the most recent sample, nil on a fresh
	// store. UIs use it to seed their live view before frames arrive.
	LastWindowEvent(ctx context.Context) (*dto.WindowEventItem, error)
}

type eventService struct {
	uowFactory unitofwork.RepositoryFactory
	settings   ISettingsService
	publisher  IPublisherService
	tracking   config.TrackingConfig
	logger     logger.ILogger
}

func NewEventService(
	uowFactory unitofwork.RepositoryFactory,
	settings ISettingsService,
	publisher IPublisherService,
	tracking config.TrackingConfig,
	sysLogger logger.ILogger,
) IEventService {
	return &eventService{
		uowFactory: uowFactory,
		settings:   settings,
		publisher:  publisher,
		tracking:   tracking,
		logger:     sysLogger,
	}
}

// RecordWindowEvent ingests one focus-change sample. The logical date
// is resolved here, at write time, with the boundary hour in force at
// the moment of ingest; later boundary edits never retag stored rows.
func (s *eventService) RecordWindowEvent(ctx context.Context, req *dto.RecordWindowEventRequest) (*dto.RecordEventResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	logicalDate := timeline.Resolve(req.Timestamp, settings.DayBoundaryHour, s.tracking.Location)

	event := &entity.WindowEvent{
		Timestamp:   req.Timestamp.UTC(),
		AppName:     req.AppName,
		WindowTitle: utils.SanitizeASCII(req.WindowTitle),
		BrowserURL:  utils.SanitizeASCII(req.BrowserURL),
		LogicalDate: logicalDate,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.WindowEventRepository().Upsert(ctx, event); err != nil {
		return nil, err
	}

	s.publishIngest(ctx, events.TypeWindowEventRecorded, map[string]interface{}{
		"timestamp":    event.Timestamp,
		"app_name":     event.AppName,
		"window_title": event.WindowTitle,
		"logical_date": string(logicalDate),
	})

	return &dto.RecordEventResponse{LogicalDate: string(logicalDate)}, nil
}

// RecordKeySample ingests one keystroke-count sample. A repeated
// timestamp adds counts instead of replacing them, so a capture agent
// that flushes twice into the same window loses nothing.
func (s *eventService) RecordKeySample(ctx context.Context, req *dto.RecordKeySampleRequest) (*dto.RecordEventResponse, error) {
	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	logicalDate := timeline.Resolve(req.Timestamp, settings.DayBoundaryHour, s.tracking.Location)

	event := &entity.KeyEvent{
		Timestamp:   req.Timestamp.UTC(),
		KeyCount:    req.KeyCount,
		LogicalDate: logicalDate,
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.KeyEventRepository().UpsertAdd(ctx, event); err != nil {
		return nil, err
	}

	s.publishIngest(ctx, events.TypeKeySampleRecorded, map[string]interface{}{
		"timestamp":    event.Timestamp,
		"key_count":    event.KeyCount,
		"logical_date": string(logicalDate),
	})

	return &dto.RecordEventResponse{LogicalDate: string(logicalDate)}, nil
}

func (s *eventService) LastWindowEvent(ctx context.Context) (*dto.WindowEventItem, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	last, err := uow.WindowEventRepository().FindLast(ctx)
	if err != nil {
		return nil, err
	}
	if last == nil {
		return nil, nil
	}
	return &dto.WindowEventItem{
		Timestamp:   last.Timestamp,
		AppName:     last.AppName,
		WindowTitle: last.WindowTitle,
		BrowserURL:  last.BrowserURL,
	}, nil
}

// publishIngest emits a live frame. Publishing is best effort: the row
// is already committed, so a bus failure is logged and swallowed.
func (s *eventService) publishIngest(ctx context.Context, eventType string, data map[string]interface{}) {
	evt := events.BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishEvent(ctx, evt); err != nil {
		s.logger.Warn("EventService", "Failed to publish live event", map[string]interface{}{
			"type": eventType, "error": err.Error(),
		})
	}
}
