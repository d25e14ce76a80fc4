package bootstrap

import (
	"activitylog-be/internal/config"
	"activitylog-be/internal/controller"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/internal/service"
	"activitylog-be/internal/websocket"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	EventController    controller.IEventController
	SummaryController  controller.ISummaryController
	NoteController     controller.INoteController
	DailyLogController controller.IDailyLogController
	SettingsController controller.ISettingsController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// WebSockets
	WebSocketHub *websocket.Hub
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	eventMapper := mapper.NewEventMapper()

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/live.log")
	wsHub := websocket.NewHub(wsLogger)
	go wsHub.Run()

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.LiveTopic, pubSub)
	consumerService := service.NewConsumerService(pubSub, cfg.App.LiveTopic, wsHub, wsLogger)

	settingsService := service.NewSettingsService(uowFactory, sysLogger)
	eventService := service.NewEventService(uowFactory, settingsService, publisherService, cfg.Tracking, sysLogger)
	noteService := service.NewNoteService(uowFactory, settingsService, publisherService, cfg.Tracking, sysLogger)
	dailyLogService := service.NewDailyLogService(uowFactory)
	summaryService := service.NewSummaryService(uowFactory, settingsService, eventMapper, cfg.Tracking, sysLogger)

	// 4. Controllers
	return &Container{
		EventController:    controller.NewEventController(eventService),
		SummaryController:  controller.NewSummaryController(summaryService),
		NoteController:     controller.NewNoteController(noteService),
		DailyLogController: controller.NewDailyLogController(dailyLogService),
		SettingsController: controller.NewSettingsController(settingsService),

		ConsumerService: consumerService,
		WebSocketHub:    wsHub,
	}
}
