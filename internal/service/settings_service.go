package service

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"regexp"
	"time"

	"activitylog-be/internal/dto"
	"activitylog-be/internal/entity"
	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/internal/pkg/logger"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/pkg/timeline"

	gocache "github.com/patrickmn/go-cache"
	"gorm.io/datatypes"
)

type ISettingsService interface {
	// Get reads the full settings aggregate fresh from the store. Never
	// cache the result across requests: rule edits must re-classify
	// historical views immediately.
	Get(ctx context.Context) (entity.Settings, error)
	GetResponse(ctx context.Context) (*dto.SettingsResponse, error)
	Update(ctx context.Context, key string, value json.RawMessage) error
	// CompiledRules compiles (or fetches a memoized compilation of) a
	// rule list. The memo key is a hash of the rule contents, so an
	// edited list can never hit a stale entry.
	CompiledRules(rules []timeline.Rule) timeline.RuleSet
}

type settingsService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger
	ruleCache  *gocache.Cache
}

func NewSettingsService(uowFactory unitofwork.RepositoryFactory, sysLogger logger.ILogger) ISettingsService {
	return &settingsService{
		uowFactory: uowFactory,
		logger:     sysLogger,
		ruleCache:  gocache.New(5*time.Minute, 10*time.Minute),
	}
}

func (s *settingsService) Get(ctx context.Context) (entity.Settings, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	settings := entity.DefaultSettings()

	raw, err := uow.SettingRepository().Get(ctx, entity.SettingDayBoundaryHour)
	if err != nil {
		return settings, err
	}
	if raw != nil {
		var hour int
		if err := json.Unmarshal(raw, &hour); err == nil && hour >= 0 && hour <= 23 {
			settings.DayBoundaryHour = hour
		} else {
			s.logger.Warn("Settings", "Ignoring malformed day_boundary_hour", map[string]interface{}{"raw": string(raw)})
		}
	}

	raw, err = uow.SettingRepository().Get(ctx, entity.SettingCategoryRules)
	if err != nil {
		return settings, err
	}
	if raw != nil {
		var rules []timeline.Rule
		if err := json.Unmarshal(raw, &rules); err == nil {
			settings.Rules = rules
		} else {
			s.logger.Warn("Settings", "Ignoring malformed category_rules", map[string]interface{}{"error": err.Error()})
		}
	}

	raw, err = uow.SettingRepository().Get(ctx, entity.SettingFocusCategories)
	if err != nil {
		return settings, err
	}
	if raw != nil {
		var categories []string
		if err := json.Unmarshal(raw, &categories); err == nil {
			settings.FocusCategories = categories
		} else {
			s.logger.Warn("Settings", "Ignoring malformed focus_categories", map[string]interface{}{"error": err.Error()})
		}
	}

	return settings, nil
}

func (s *settingsService) GetResponse(ctx context.Context) (*dto.SettingsResponse, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.SettingsResponse{
		DayBoundaryHour: settings.DayBoundaryHour,
		CategoryRules:   settings.Rules,
		FocusCategories: settings.FocusCategories,
	}, nil
}

// Update validates the value for its key and persists it. Validation
// happens here, at the write boundary; reads never reject.
func (s *settingsService) Update(ctx context.Context, key string, value json.RawMessage) error {
	switch key {
	case entity.SettingDayBoundaryHour:
		var hour int
		if err := json.Unmarshal(value, &hour); err != nil {
			return apperror.NewValidation("day_boundary_hour must be an integer")
		}
		if hour < 0 || hour > 23 {
			return apperror.NewValidation("day_boundary_hour must be between 0 and 23, got %d", hour)
		}

	case entity.SettingCategoryRules:
		var rules []timeline.Rule
		if err := json.Unmarshal(value, &rules); err != nil {
			return apperror.NewValidation("category_rules must be a list of {pattern, category, priority}")
		}
		for i, r := range rules {
			if r.Pattern == "" || r.Category == "" {
				return apperror.NewValidation("category_rules[%d]: pattern and category are required", i)
			}
			// A non-compiling pattern is accepted but warned about; the
			// classifier skips it at load time.
			if _, err := regexp.Compile("(?i)" + r.Pattern); err != nil {
				s.logger.Warn("Settings", "Saving rule with non-compiling pattern", map[string]interface{}{
					"pattern": r.Pattern, "category": r.Category, "error": err.Error(),
				})
			}
		}

	case entity.SettingFocusCategories:
		var categories []string
		if err := json.Unmarshal(value, &categories); err != nil {
			return apperror.NewValidation("focus_categories must be a list of category names")
		}

	default:
		return apperror.NewValidation("unknown setting key %q", key)
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	return uow.SettingRepository().Set(ctx, key, datatypes.JSON(value))
}

func (s *settingsService) CompiledRules(rules []timeline.Rule) timeline.RuleSet {
	payload, err := json.Marshal(rules)
	if err != nil {
		payload = nil
	}
	cacheKey := fmt.Sprintf("%x", md5.Sum(payload))

	if cached, ok := s.ruleCache.Get(cacheKey); ok {
		return cached.(timeline.RuleSet)
	}

	rs, invalid := timeline.CompileRules(rules)
	for _, bad := range invalid {
		s.logger.Warn("Classifier", "Skipping invalid category rule", map[string]interface{}{
			"pattern": bad.Rule.Pattern, "category": bad.Rule.Category, "error": bad.Err.Error(),
		})
	}

	s.ruleCache.Set(cacheKey, rs, gocache.DefaultExpiration)
	return rs
}
