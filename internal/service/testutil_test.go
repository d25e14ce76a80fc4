package service_test

import (
	"path/filepath"
	"testing"
	"time"

	"activitylog-be/internal/config"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/model"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/internal/service"
	"activitylog-be/pkg/database"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type testEnv struct {
	UowFactory unitofwork.RepositoryFactory
	Settings   service.ISettingsService
	Events     service.IEventService
	Notes      service.INoteService
	DailyLogs  service.IDailyLogService
	Summary    service.ISummaryService
	Tracking   config.TrackingConfig
	Logger     logger.ILogger
}

// newTestEnv wires the full service stack against a throwaway sqlite
// store, the same way the container does in production.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dir := t.TempDir()
	db, err := database.NewGormDB("sqlite", filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	if err := db.AutoMigrate(
		&model.WindowEvent{},
		&model.KeyEvent{},
		&model.Note{},
		&model.DailyLog{},
		&model.Setting{},
	); err != nil {
		t.Fatalf("failed to migrate test db: %v", err)
	}

	uowFactory := unitofwork.NewRepositoryFactory(db)
	testLogger := logger.NewIsolatedLogger(filepath.Join(dir, "test.log"))
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NopLogger{})
	publisher := service.NewPublisherService("TEST_TOPIC", pubSub)
	tracking := config.TrackingConfig{Timezone: "UTC", Location: time.UTC}
	eventMapper := mapper.NewEventMapper()

	settings := service.NewSettingsService(uowFactory, testLogger)

	return &testEnv{
		UowFactory: uowFactory,
		Settings:   settings,
		Events:     service.NewEventService(uowFactory, settings, publisher, tracking, testLogger),
		Notes:      service.NewNoteService(uowFactory, settings, publisher, tracking, testLogger),
		DailyLogs:  service.NewDailyLogService(uowFactory),
		Summary:    service.NewSummaryService(uowFactory, settings, eventMapper, tracking, testLogger),
		Tracking:   tracking,
		Logger:     testLogger,
	}
}
