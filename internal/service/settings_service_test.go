package service_test

import (
	"context"
	"encoding/json"
	"testing"

	"activitylog-be/internal/pkg/apperror"
	"activitylog-be/pkg/timeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	settings, err := env.Settings.Get(ctx)
	require.NoError(t, err)

	assert.Equal(t, timeline.DefaultBoundaryHour, settings.DayBoundaryHour)
	assert.Empty(t, settings.Rules)
	assert.Contains(t, settings.FocusCategories, "Coding")
}

func TestSettingsUpdateRoundTrip(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	err := env.Settings.Update(ctx, "day_boundary_hour", json.RawMessage(`4`))
	require.NoError(t, err)

	rules := `[{"pattern":"chrome","category":"Browsing","priority":5}]`
	err = env.Settings.Update(ctx, "category_rules", json.RawMessage(rules))
	require.NoError(t, err)

	settings, err := env.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, settings.DayBoundaryHour)
	require.Len(t, settings.Rules, 1)
	assert.Equal(t, "Browsing", settings.Rules[0].Category)
}

func TestSettingsUpdateIsIdempotent(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := env.Settings.Update(ctx, "day_boundary_hour", json.RawMessage(`5`))
		require.NoError(t, err)
	}

	settings, err := env.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, settings.DayBoundaryHour)
}

func TestSettingsUpdateValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"hour out of range", "day_boundary_hour", `24`},
		{"hour negative", "day_boundary_hour", `-1`},
		{"hour not a number", "day_boundary_hour", `"seven"`},
		{"rule missing category", "category_rules", `[{"pattern":"x","priority":1}]`},
		{"rule missing pattern", "category_rules", `[{"category":"X","priority":1}]`},
		{"focus categories not a list", "focus_categories", `"Coding"`},
		{"unknown key", "nonsense", `1`},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := env.Settings.Update(ctx, tc.key, json.RawMessage(tc.value))
			require.Error(t, err)
			assert.Equal(t, apperror.KindValidation, apperror.KindOf(err))
		})
	}
}

func TestSettingsAcceptsNonCompilingPattern(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Saving succeeds; the classifier skips the broken rule at compile
	// time instead.
	rules := `[{"pattern":"[unclosed","category":"Broken","priority":1}]`
	err := env.Settings.Update(ctx, "category_rules", json.RawMessage(rules))
	require.NoError(t, err)

	settings, err := env.Settings.Get(ctx)
	require.NoError(t, err)
	rs := env.Settings.CompiledRules(settings.Rules)
	assert.Equal(t, 0, rs.Len())
}

func TestCompiledRulesMemoCannotGoStale(t *testing.T) {
	env := newTestEnv(t)

	first := env.Settings.CompiledRules([]timeline.Rule{
		{Pattern: "chrome", Category: "Browsing", Priority: 1},
	})
	assert.Equal(t, 1, first.Len())

	// A different rule list must produce a different compilation even
	// though the first one was memoized.
	second := env.Settings.CompiledRules([]timeline.Rule{
		{Pattern: "chrome", Category: "Browsing", Priority: 1},
		{Pattern: "code", Category: "Coding", Priority: 2},
	})
	assert.Equal(t, 2, second.Len())
}

func TestSettingsReadFreshAfterUpdate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Settings.Get(ctx)
	require.NoError(t, err)

	err = env.Settings.Update(ctx, "day_boundary_hour", json.RawMessage(`2`))
	require.NoError(t, err)

	settings, err := env.Settings.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, settings.DayBoundaryHour, "reads must see the update immediately")
}
