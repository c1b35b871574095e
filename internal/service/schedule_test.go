package service

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

func day(n int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(n), Valid: true}
}

func dateUTC(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandSchedule_DailyProducesEveryElapsedDay(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyDaily}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.March, 10))
	require.NoError(t, err)

	require.Len(t, dates, 10)
	assert.Equal(t, dateUTC(2025, time.March, 1), dates[0])
	assert.Equal(t, dateUTC(2025, time.March, 10), dates[9])
}

func TestExpandSchedule_WeeklyMatchesWeekday(t *testing.T) {
	// Day 1 is Tuesday; the Tuesdays of March 2025 are the 4th, 11th, 18th, 25th.
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyWeekly,
		Day:       day(1),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.March, 12))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		dateUTC(2025, time.March, 4),
		dateUTC(2025, time.March, 11),
	}, dates)
}

func TestExpandSchedule_WeeklyDefaultsToMonday(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyWeekly}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.March, 12))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		dateUTC(2025, time.March, 3),
		dateUTC(2025, time.March, 10),
	}, dates)
}

func TestExpandSchedule_WeeklySundayIsSix(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyWeekly,
		Day:       day(6),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.March, 12))
	require.NoError(t, err)

	assert.Equal(t, []time.Time{
		dateUTC(2025, time.March, 2),
		dateUTC(2025, time.March, 9),
	}, dates)
}

func TestExpandSchedule_MonthlyClampsToShortMonth(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyMonthly,
		Day:       day(31),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.April, 30))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{dateUTC(2025, time.April, 30)}, dates)
}

func TestExpandSchedule_MonthlyNotYetDue(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyMonthly,
		Day:       day(15),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.April, 10))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandSchedule_MonthlyLeapFebruary(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyMonthly,
		Day:       day(31),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2024, time.February, 29))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{dateUTC(2024, time.February, 29)}, dates)

	dates, err = ExpandSchedule(tmpl, dateUTC(2025, time.February, 28))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{dateUTC(2025, time.February, 28)}, dates)
}

func TestExpandSchedule_MonthlyDefaultsToFirst(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyMonthly}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.April, 1))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{dateUTC(2025, time.April, 1)}, dates)
}

func TestExpandSchedule_YearlyFiresInCreationMonth(t *testing.T) {
	tmpl := &sqlconfig.RecurringTemplate{
		Frequency: sqlconfig.FrequencyYearly,
		Day:       day(4),
		CreatedAt: dateUTC(2024, time.July, 20),
	}

	dates, err := ExpandSchedule(tmpl, dateUTC(2025, time.July, 10))
	require.NoError(t, err)
	assert.Equal(t, []time.Time{dateUTC(2025, time.July, 4)}, dates)

	dates, err = ExpandSchedule(tmpl, dateUTC(2025, time.June, 30))
	require.NoError(t, err)
	assert.Empty(t, dates)
}

func TestExpandSchedule_NeverProducesFutureDates(t *testing.T) {
	now := dateUTC(2025, time.March, 17)
	templates := []*sqlconfig.RecurringTemplate{
		{Frequency: sqlconfig.FrequencyDaily},
		{Frequency: sqlconfig.FrequencyWeekly, Day: day(5)},
		{Frequency: sqlconfig.FrequencyMonthly, Day: day(28)},
		{Frequency: sqlconfig.FrequencyYearly, Day: day(20), CreatedAt: dateUTC(2024, time.March, 1)},
	}

	for _, tmpl := range templates {
		dates, err := ExpandSchedule(tmpl, now)
		require.NoError(t, err)
		for _, d := range dates {
			assert.False(t, d.After(now), "%s template produced future date %s", tmpl.Frequency, d)
		}
	}
}

func TestExpandSchedule_RejectsInvalidDays(t *testing.T) {
	cases := []struct {
		name string
		tmpl *sqlconfig.RecurringTemplate
	}{
		{"weekly day out of range", &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyWeekly, Day: day(7)}},
		{"weekly negative day", &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyWeekly, Day: day(-1)}},
		{"monthly day zero", &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyMonthly, Day: day(0)}},
		{"monthly day too large", &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyMonthly, Day: day(32)}},
		{"yearly day zero", &sqlconfig.RecurringTemplate{Frequency: sqlconfig.FrequencyYearly, Day: day(0)}},
		{"unknown frequency", &sqlconfig.RecurringTemplate{Frequency: "fortnightly"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ExpandSchedule(tc.tmpl, dateUTC(2025, time.March, 17))
			assert.ErrorIs(t, err, ErrInvalidTemplate)
		})
	}
}
