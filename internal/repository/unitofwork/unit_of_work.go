package unitofwork

import (
	"context"

	"activitylog-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	WindowEventRepository() contract.WindowEventRepository
	KeyEventRepository() contract.KeyEventRepository
	NoteRepository() contract.NoteRepository
	DailyLogRepository() contract.DailyLogRepository
	SettingRepository() contract.SettingRepository
}
