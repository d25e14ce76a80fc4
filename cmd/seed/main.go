// Seeds a synthetic week of capture data so the UI has something to
// render on a fresh install. Safe to re-run: conflicting rows are
// skipped by the same upsert rules the ingest path uses.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"activitylog-be/internal/config"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/database"
	"activitylog-be/pkg/timeline"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var apps = []struct {
	name   string
	titles []string
}{
	{"Google Chrome", []string{"Pull requests - GitHub", "Hacker News", "Go maps in action", "Stack Overflow - gorm upsert"}},
	{"Code", []string{"summary_service.go - activitylog", "derive.go - activitylog", "settings.json"}},
	{"Terminal", []string{"~/src/activitylog", "htop", "git log"}},
	{"Slack", []string{"#general", "#random"}},
	{"Spotify", []string{"Discover Weekly"}},
	{timeline.LockedScreenApp, []string{""}},
}

var sampleRules = []timeline.Rule{
	{Pattern: `code|vim|terminal`, Category: "Coding", Priority: 10},
	{Pattern: `github|stack overflow`, Category: "Coding", Priority: 9},
	{Pattern: `slack`, Category: "Chat", Priority: 5},
	{Pattern: `spotify`, Category: "Music", Priority: 1},
}

func main() {
	cfg := config.Load()
	ctx := context.Background()

	db, err := database.NewGormDB(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	uow := unitofwork.NewUnitOfWork(db)
	rng := rand.New(rand.NewSource(42))

	color.Cyan("Seeding 7 days of synthetic activity...")

	settings := entity.DefaultSettings()
	loc := cfg.Tracking.Location

	totalWindows, totalKeys := 0, 0
	for dayOffset := 6; dayOffset >= 0; dayOffset-- {
		dayStart := time.Now().In(loc).AddDate(0, 0, -dayOffset)
		dayStart = time.Date(dayStart.Year(), dayStart.Month(), dayStart.Day(), 9, 0, 0, 0, loc)

		focusEvents, k := seedDay(ctx, uow, settings, loc, dayStart, rng)
		totalWindows += len(focusEvents)
		totalKeys += k

		active := timeline.TotalActive(timeline.DeriveUsage(focusEvents, timeline.DefaultGapCap))
		date := timeline.Resolve(dayStart, settings.DayBoundaryHour, loc)
		color.Green("  %s: %d window events, %d key samples, %s active",
			date, len(focusEvents), k, timeline.FormatDuration(active))
	}

	seedNotesAndLogs(ctx, uow, settings, loc)
	seedRules(ctx, uow)

	color.Cyan("Done: %d window events, %d key samples.", totalWindows, totalKeys)
}

func seedDay(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	settings entity.Settings,
	loc *time.Location,
	dayStart time.Time,
	rng *rand.Rand,
) (focusEvents []timeline.FocusEvent, keys int) {
	ts := dayStart
	end := dayStart.Add(8 * time.Hour)

	for ts.Before(end) {
		app := apps[rng.Intn(len(apps))]
		title := app.titles[rng.Intn(len(app.titles))]

		event := &entity.WindowEvent{
			Timestamp:   ts.UTC(),
			AppName:     app.name,
			WindowTitle: title,
			LogicalDate: timeline.Resolve(ts, settings.DayBoundaryHour, loc),
		}
		if err := uow.WindowEventRepository().Upsert(ctx, event); err != nil {
			log.Fatalf("Error seeding window event: %v", err)
		}
		focusEvents = append(focusEvents, timeline.FocusEvent{
			Timestamp:   event.Timestamp,
			AppName:     event.AppName,
			WindowTitle: event.WindowTitle,
		})

		// A burst of typing while a coding app is focused.
		if app.name == "Code" || app.name == "Terminal" {
			sample := &entity.KeyEvent{
				Timestamp:   ts.Add(30 * time.Second).UTC(),
				KeyCount:    20 + rng.Intn(200),
				LogicalDate: event.LogicalDate,
			}
			if err := uow.KeyEventRepository().UpsertAdd(ctx, sample); err != nil {
				log.Fatalf("Error seeding key sample: %v", err)
			}
			keys++
		}

		ts = ts.Add(time.Duration(1+rng.Intn(12)) * time.Minute)
	}

	return focusEvents, keys
}

func seedNotesAndLogs(ctx context.Context, uow unitofwork.UnitOfWork, settings entity.Settings, loc *time.Location) {
	now := time.Now().In(loc)
	today := timeline.Resolve(now, settings.DayBoundaryHour, loc)

	note := &entity.Note{
		Id:          uuid.New(),
		Timestamp:   now.UTC(),
		Content:     "standup: finished the rollup endpoint",
		LogicalDate: today,
	}
	if err := uow.NoteRepository().Create(ctx, note); err != nil {
		color.Yellow("  note already seeded, skipping (%v)", err)
	}

	dailyLog := &entity.DailyLog{
		LogicalDate: today,
		Content:     fmt.Sprintf("# %s\n\nSeeded journal entry.", today),
		UpdatedAt:   time.Now().UTC(),
	}
	if err := uow.DailyLogRepository().Upsert(ctx, dailyLog); err != nil {
		log.Fatalf("Error seeding daily log: %v", err)
	}
}

func seedRules(ctx context.Context, uow unitofwork.UnitOfWork) {
	existing, err := uow.SettingRepository().Get(ctx, entity.SettingCategoryRules)
	if err != nil {
		log.Fatalf("Error reading category rules: %v", err)
	}
	if existing != nil {
		var rules []timeline.Rule
		if json.Unmarshal(existing, &rules) == nil && len(rules) > 0 {
			color.Yellow("  category rules already present, skipping")
			return
		}
	}

	payload, _ := json.Marshal(sampleRules)
	if err := uow.SettingRepository().Set(ctx, entity.SettingCategoryRules, datatypes.JSON(payload)); err != nil {
		log.Fatalf("Error seeding category rules: %v", err)
	}
	color.Green("  seeded %d category rules", len(sampleRules))
}
