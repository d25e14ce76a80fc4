package service

import (
	"context"
	"time"

	"activitylog-be/internal/dto"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/timeline"
)

type IDailyLogService interface {
	Save(ctx context.Context, date string, req *dto.SaveDailyLogRequest) (*dto.DailyLogResponse, error)
	Get(ctx context.Context, date string) (*dto.DailyLogResponse, error)
}

type dailyLogService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewDailyLogService(uowFactory unitofwork.RepositoryFactory) IDailyLogService {
	return &dailyLogService{uowFactory: uowFactory}
}

// Save overwrites the free-form journal entry for a logical day. One
// entry per day; saving again replaces the previous text.
func (s *dailyLogService) Save(ctx context.Context, date string, req *dto.SaveDailyLogRequest) (*dto.DailyLogResponse, error) {
	logicalDate, err := timeline.ParseDate(date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	log := &entity.DailyLog{
		LogicalDate: logicalDate,
		Content:     req.Content,
		UpdatedAt:   time.Now().UTC(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DailyLogRepository().Upsert(ctx, log); err != nil {
		return nil, err
	}

	return &dto.DailyLogResponse{
		LogicalDate: string(logicalDate),
		Content:     log.Content,
		UpdatedAt:   log.UpdatedAt,
	}, nil
}

// Get returns the journal entry for a day, or an empty entry when none
// was ever written. A day without a journal is an ordinary state, not
// an error.
func (s *dailyLogService) Get(ctx context.Context, date string) (*dto.DailyLogResponse, error) {
	logicalDate, err := timeline.ParseDate(date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	log, err := uow.DailyLogRepository().FindByDate(ctx, logicalDate)
	if err != nil {
		return nil, err
	}
	if log == nil {
		return &dto.DailyLogResponse{LogicalDate: string(logicalDate), Content: ""}, nil
	}

	return &dto.DailyLogResponse{
		LogicalDate: string(log.LogicalDate),
		Content:     log.Content,
		UpdatedAt:   log.UpdatedAt,
	}, nil
}
