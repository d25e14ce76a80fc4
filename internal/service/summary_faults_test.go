package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"activitylog-be/internal/entity"
	"activitylog-be/internal/mapper"
	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/internal/repository/contract"
	"activitylog-be/internal/repository/specification"
	"activitylog-be/internal/repository/unitofwork"
	"activitylog-be/internal/service"
	"activitylog-be/pkg/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// faultingWindowRepo delegates to the real repository but fails FindAll
// for one logical date, simulating a day whose rows cannot be read.
type faultingWindowRepo struct {
	contract.WindowEventRepository
	failDate timeline.Date
	err      error
}

func (r *faultingWindowRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.WindowEvent, error) {
	for _, s := range specs {
		if byDate, ok := s.(specification.ByLogicalDate); ok && byDate.Date == r.failDate {
			return nil, r.err
		}
	}
	return r.WindowEventRepository.FindAll(ctx, specs...)
}

type faultingUnitOfWork struct {
	unitofwork.UnitOfWork
	failDate timeline.Date
	err      error
}

func (u *faultingUnitOfWork) WindowEventRepository() contract.WindowEventRepository {
	return &faultingWindowRepo{
		WindowEventRepository: u.UnitOfWork.WindowEventRepository(),
		failDate:              u.failDate,
		err:                   u.err,
	}
}

type faultingFactory struct {
	inner    unitofwork.RepositoryFactory
	failDate timeline.Date
	err      error
}

func (f *faultingFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &faultingUnitOfWork{
		UnitOfWork: f.inner.NewUnitOfWork(ctx),
		failDate:   f.failDate,
		err:        f.err,
	}
}

func newFaultingSummary(env *testEnv, failDate timeline.Date, err error) service.ISummaryService {
	factory := &faultingFactory{inner: env.UowFactory, failDate: failDate, err: err}
	return service.NewSummaryService(factory, env.Settings, mapper.NewEventMapper(), env.Tracking, env.Logger)
}

func TestGetRollupMarksFailedDayAndContinues(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedKeys(t, env, time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC), 70)
	seedKeys(t, env, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), 30)

	summary := newFaultingSummary(env, "2026-03-09", errors.New("window rows unreadable"))

	res, err := summary.GetRollup(ctx, "2026-03-08", "2026-03-10", 0)
	require.NoError(t, err, "one bad day must not abort the range")
	require.Len(t, res.PerDay, 3)

	failed := res.PerDay[1]
	assert.Equal(t, "2026-03-09", failed.LogicalDate)
	assert.NotEmpty(t, failed.Error)
	assert.Zero(t, failed.TotalKeystrokes, "failed day is zero-filled, seeded keys notwithstanding")
	assert.Zero(t, failed.UniqueAppCount)
	assert.Empty(t, failed.CategoryDurations)

	// The surrounding days compute normally and the totals carry only
	// what was actually summed.
	assert.Empty(t, res.PerDay[0].Error)
	assert.Equal(t, 30, res.PerDay[0].TotalKeystrokes)
	assert.Empty(t, res.PerDay[2].Error)
	assert.Equal(t, 3, res.RangeTotals.Days)
	assert.Equal(t, 30, res.RangeTotals.TotalKeystrokes)
}

func TestGetRollupStorageFailureAborts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	seedKeys(t, env, time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC), 30)

	summary := newFaultingSummary(env, "2026-03-09",
		apperror.NewStorageUnavailable("storage: list window events", errors.New("database file gone")))

	_, err := summary.GetRollup(ctx, "2026-03-08", "2026-03-10", 0)
	require.Error(t, err, "a storage outage surfaces instead of being zero-filled away")
	assert.True(t, apperror.IsStorageUnavailable(err))
}
