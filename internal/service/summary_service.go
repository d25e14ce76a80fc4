package service

import (
	"context"
	"sort"
	"time"

	"activitylog-be/internal/config"
	"activitylog-be/internal/dto"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/timeline"
)

const (
	// DefaultRollupLimit bounds how many days a single rollup request
	// walks when the caller gives no limit of its own.
	DefaultRollupLimit = 30
	// MaxRollupLimit is the hard ceiling on days per rollup page.
	MaxRollupLimit = 366
	// DefaultAppHistoryLimit bounds the events returned per app-history
	// page.
	DefaultAppHistoryLimit = 200
)

type ISummaryService interface {
	GetDaySummary(ctx context.Context, date string) (*dto.DaySummaryResponse, error)
	GetAppUsage(ctx context.Context, date string) ([]dto.AppUsageItem, error)
	GetOverview(ctx context.Context, from, to string, limit int) ([]dto.OverviewItem, error)
	GetRollup(ctx context.Context, from, to string, limit int) (*dto.RollupResponse, error)
	GetAppHistory(ctx context.Context, app, from, to string, limit, offset int) (*dto.AppHistoryResponse, error)
	GetAvailableDates(ctx context.Context) ([]string, error)
}

type summaryService struct {
	uowFactory  unitofwork.RepositoryFactory
	settings    ISettingsService
	eventMapper *mapper.EventMapper
	tracking    config.TrackingConfig
	logger      logger.ILogger
}

func NewSummaryService(
	uowFactory unitofwork.RepositoryFactory,
	settings ISettingsService,
	eventMapper *mapper.EventMapper,
	tracking config.TrackingConfig,
	sysLogger logger.ILogger,
) ISummaryService {
	return &summaryService{
		uowFactory:  uowFactory,
		settings:    settings,
		eventMapper: eventMapper,
		tracking:    tracking,
		logger:      sysLogger,
	}
}

// GetDaySummary returns the raw material of one logical day: every
// window event, key sample and note, plus the journal entry when one
// exists. No derivation happens here; clients that want durations call
// the usage or rollup endpoints.
func (s *summaryService) GetDaySummary(ctx context.Context, date string) (*dto.DaySummaryResponse, error) {
	logicalDate, err := timeline.ParseDate(date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	byDate := specification.ByLogicalDate{Date: logicalDate}
	ascending := specification.OrderBy{Field: "timestamp"}

	windows, err := uow.WindowEventRepository().FindAll(ctx, byDate, ascending)
	if err != nil {
		return nil, err
	}
	keys, err := uow.KeyEventRepository().FindAll(ctx, byDate, ascending)
	if err != nil {
		return nil, err
	}
	notes, err := uow.NoteRepository().FindAll(ctx, byDate, ascending)
	if err != nil {
		return nil, err
	}
	dailyLog, err := uow.DailyLogRepository().FindByDate(ctx, logicalDate)
	if err != nil {
		return nil, err
	}

	resp := &dto.DaySummaryResponse{
		LogicalDate:  string(logicalDate),
		WindowEvents: make([]dto.WindowEventItem, len(windows)),
		KeyEvents:    make([]dto.KeyEventItem, len(keys)),
		Notes:        make([]dto.NoteItem, len(notes)),
	}
	for i, w := range windows {
		resp.WindowEvents[i] = dto.WindowEventItem{
			Timestamp:   w.Timestamp,
			AppName:     w.AppName,
			WindowTitle: w.WindowTitle,
			BrowserURL:  w.BrowserURL,
		}
	}
	for i, k := range keys {
		resp.KeyEvents[i] = dto.KeyEventItem{Timestamp: k.Timestamp, KeyCount: k.KeyCount}
	}
	for i, n := range notes {
		resp.Notes[i] = dto.NoteItem{Id: n.Id.String(), Timestamp: n.Timestamp, Content: n.Content}
	}
	if dailyLog != nil {
		content := dailyLog.Content
		resp.DailyLog = &content
	}

	return resp, nil
}

// GetAppUsage derives per-app active time for one logical day and tags
// each app with its category under the rules in force right now.
func (s *summaryService) GetAppUsage(ctx context.Context, date string) ([]dto.AppUsageItem, error) {
	logicalDate, err := timeline.ParseDate(date)
	if err != nil {
		return nil, apperror.NewValidation("date must be YYYY-MM-DD")
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	rs := s.settings.CompiledRules(settings.Rules)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	windows, err := uow.WindowEventRepository().FindAll(ctx,
		specification.ByLogicalDate{Date: logicalDate},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return nil, err
	}

	usage := timeline.DeriveUsage(s.eventMapper.ToFocusEvents(windows), timeline.DefaultGapCap)

	items := make([]dto.AppUsageItem, 0, len(usage))
	for app, u := range usage {
		items = append(items, dto.AppUsageItem{
			AppName:         app,
			Category:        rs.Categorize(app, ""),
			DurationSeconds: int64(u.Duration.Seconds()),
			EventCount:      u.Events,
		})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].DurationSeconds != items[j].DurationSeconds {
			return items[i].DurationSeconds > items[j].DurationSeconds
		}
		return items[i].AppName < items[j].AppName
	})

	return items, nil
}

// GetOverview returns a newest-first strip of logical days, zero-filled
// so the client can render a contiguous activity bar without its own
// gap handling. The range defaults like the rollup: to is the current
// logical day, from is limit-1 days earlier.
func (s *summaryService) GetOverview(ctx context.Context, from, to string, limit int) ([]dto.OverviewItem, error) {
	if limit <= 0 {
		limit = DefaultRollupLimit
	}
	if limit > MaxRollupLimit {
		limit = MaxRollupLimit
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	fromDate, toDate, err := resolveRange(from, to, limit, settings.DayBoundaryHour, s.tracking.Location)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	items := make([]dto.OverviewItem, 0, limit)

	for day := toDate; !day.Before(fromDate) && len(items) < limit; day = day.AddDays(-1) {
		totalKeys, err := uow.KeyEventRepository().SumKeyCount(ctx, specification.ByLogicalDate{Date: day})
		if err != nil {
			return nil, err
		}
		uniqueApps, err := uow.WindowEventRepository().CountDistinctApps(ctx, day)
		if err != nil {
			return nil, err
		}
		items = append(items, dto.OverviewItem{
			LogicalDate: string(day),
			TotalKeys:   int(totalKeys),
			UniqueApps:  int(uniqueApps),
		})
	}

	return items, nil
}

// resolveRange fills the optional range bounds: to defaults to the
// current logical day, from to limit-1 days before to.
func resolveRange(from, to string, limit, boundaryHour int, loc *time.Location) (timeline.Date, timeline.Date, error) {
	var toDate timeline.Date
	if to != "" {
		parsed, err := timeline.ParseDate(to)
		if err != nil {
			return "", "", apperror.NewValidation("to must be YYYY-MM-DD")
		}
		toDate = parsed
	} else {
		toDate = timeline.Today(boundaryHour, loc)
	}

	var fromDate timeline.Date
	if from != "" {
		parsed, err := timeline.ParseDate(from)
		if err != nil {
			return "", "", apperror.NewValidation("from must be YYYY-MM-DD")
		}
		fromDate = parsed
	} else {
		fromDate = toDate.AddDays(-(limit - 1))
	}
	if toDate.Before(fromDate) {
		return "", "", apperror.NewValidation("from %s is after to %s", fromDate, toDate)
	}

	return fromDate, toDate, nil
}

// GetRollup walks a logical-date range newest-first and derives the
// classified rollup of each day. Days without data are zero-filled; a
// day whose derivation fails for a non-storage reason is zero-filled
// and marked, while a storage failure aborts the whole request. The
// range totals cover exactly the page returned, so a limit-truncated
// request never reports totals for days it did not compute.
func (s *summaryService) GetRollup(ctx context.Context, from, to string, limit int) (*dto.RollupResponse, error) {
	if limit <= 0 {
		limit = DefaultRollupLimit
	}
	if limit > MaxRollupLimit {
		limit = MaxRollupLimit
	}

	settings, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}
	rs := s.settings.CompiledRules(settings.Rules)

	fromDate, toDate, err := resolveRange(from, to, limit, settings.DayBoundaryHour, s.tracking.Location)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	resp := &dto.RollupResponse{
		PerDay: make([]dto.DayRollup, 0, limit),
		RangeTotals: dto.RangeTotals{
			CategoryDurations: make(map[string]int64),
		},
	}

	for day := toDate; !day.Before(fromDate) && len(resp.PerDay) < limit; day = day.AddDays(-1) {
		rollup, err := s.rollupDay(ctx, uow, day, settings, rs)
		if err != nil {
			if apperror.IsStorageUnavailable(err) {
				return nil, err
			}
			s.logger.Warn("Summary", "Day rollup failed, zero-filling", map[string]interface{}{
				"date": string(day), "error": err.Error(),
			})
			rollup = dto.DayRollup{
				LogicalDate:       string(day),
				CategoryDurations: map[string]int64{},
				Error:             err.Error(),
			}
		}
		resp.PerDay = append(resp.PerDay, rollup)

		resp.RangeTotals.Days++
		resp.RangeTotals.TotalKeystrokes += rollup.TotalKeystrokes
		resp.RangeTotals.FocusSeconds += rollup.FocusSeconds
		for category, seconds := range rollup.CategoryDurations {
			resp.RangeTotals.CategoryDurations[category] += seconds
		}
	}

	return resp, nil
}

func (s *summaryService) rollupDay(
	ctx context.Context,
	uow unitofwork.UnitOfWork,
	day timeline.Date,
	settings entity.Settings,
	rs timeline.RuleSet,
) (dto.DayRollup, error) {
	rollup := dto.DayRollup{
		LogicalDate:       string(day),
		CategoryDurations: make(map[string]int64),
	}

	windows, err := uow.WindowEventRepository().FindAll(ctx,
		specification.ByLogicalDate{Date: day},
		specification.OrderBy{Field: "timestamp"},
	)
	if err != nil {
		return rollup, err
	}
	totalKeys, err := uow.KeyEventRepository().SumKeyCount(ctx, specification.ByLogicalDate{Date: day})
	if err != nil {
		return rollup, err
	}

	focusEvents := s.eventMapper.ToFocusEvents(windows)
	usage := timeline.DeriveUsage(focusEvents, timeline.DefaultGapCap)
	categories := timeline.DeriveCategories(focusEvents, timeline.DefaultGapCap, rs)

	rollup.TotalKeystrokes = int(totalKeys)
	rollup.UniqueAppCount = len(usage)
	for category, d := range categories {
		seconds := int64(d.Seconds())
		rollup.CategoryDurations[category] = seconds
		if settings.IsFocusCategory(category) {
			rollup.FocusSeconds += seconds
		}
	}

	return rollup, nil
}

// GetAppHistory returns the raw focus samples of one app across a
// logical-date range, newest first. Both bounds are optional and open
// when absent; total_events counts the full match so clients can page
// with offset.
func (s *summaryService) GetAppHistory(ctx context.Context, app, from, to string, limit, offset int) (*dto.AppHistoryResponse, error) {
	if app == "" {
		return nil, apperror.NewValidation("app name is required")
	}
	if limit <= 0 {
		limit = DefaultAppHistoryLimit
	}
	if offset < 0 {
		offset = 0
	}

	dateRange, err := parseOpenRange(from, to)
	if err != nil {
		return nil, err
	}
	byApp := specification.Filter("app_name", app)

	uow := s.uowFactory.NewUnitOfWork(ctx)
	total, err := uow.WindowEventRepository().Count(ctx, byApp, dateRange)
	if err != nil {
		return nil, err
	}
	events, err := uow.WindowEventRepository().FindAll(ctx,
		byApp,
		dateRange,
		specification.OrderBy{Field: "timestamp", Desc: true},
		specification.Pagination{Limit: limit, Offset: offset},
	)
	if err != nil {
		return nil, err
	}

	resp := &dto.AppHistoryResponse{
		AppName:     app,
		TotalEvents: total,
		Events:      make([]dto.WindowEventItem, len(events)),
	}
	for i, w := range events {
		resp.Events[i] = dto.WindowEventItem{
			Timestamp:   w.Timestamp,
			AppName:     w.AppName,
			WindowTitle: w.WindowTitle,
			BrowserURL:  w.BrowserURL,
		}
	}

	return resp, nil
}

// parseOpenRange builds a date-range spec where an absent bound stays
// open, unlike resolveRange which anchors missing bounds to today.
func parseOpenRange(from, to string) (specification.DateRange, error) {
	var r specification.DateRange
	if from != "" {
		parsed, err := timeline.ParseDate(from)
		if err != nil {
			return r, apperror.NewValidation("from must be YYYY-MM-DD")
		}
		r.From = parsed
	}
	if to != "" {
		parsed, err := timeline.ParseDate(to)
		if err != nil {
			return r, apperror.NewValidation("to must be YYYY-MM-DD")
		}
		r.To = parsed
	}
	if r.From != "" && r.To != "" && r.To.Before(r.From) {
		return r, apperror.NewValidation("from %s is after to %s", r.From, r.To)
	}
	return r, nil
}

// GetAvailableDates returns every logical day with at least one window
// or key event, newest first.
func (s *summaryService) GetAvailableDates(ctx context.Context) ([]string, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	windowDates, err := uow.WindowEventRepository().DistinctDates(ctx)
	if err != nil {
		return nil, err
	}
	keyDates, err := uow.KeyEventRepository().DistinctDates(ctx)
	if err != nil {
		return nil, err
	}

	seen := make(map[timeline.Date]struct{}, len(windowDates)+len(keyDates))
	for _, d := range windowDates {
		seen[d] = struct{}{}
	}
	for _, d := range keyDates {
		seen[d] = struct{}{}
	}

	dates := make([]string, 0, len(seen))
	for d := range seen {
		dates = append(dates, string(d))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))

	return dates, nil
}
