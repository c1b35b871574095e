package service

import (
	"time"

	"github.com/tempo-networks/budget-server/internal/storage/sqlconfig"
)

// Schedule expansion is pure: given a template and a point in time it
// produces the occurrence dates due in the current month, from the 1st
// through the current day. Future days of the month are never produced.
//
// Template weekdays are numbered 0=Monday through 6=Sunday.

type schedule interface {
	// dueDays returns the due day numbers for a month with daysInMonth
	// days, capped at today.
	dueDays(year int, month time.Month, daysInMonth, today int) []int
}

type dailySchedule struct{}

func (dailySchedule) dueDays(_ int, _ time.Month, _, today int) []int {
	days := make([]int, 0, today)
	for d := 1; d <= today; d++ {
		days = append(days, d)
	}
	return days
}

type weeklySchedule struct {
	weekday time.Weekday
}

func (s weeklySchedule) dueDays(year int, month time.Month, _, today int) []int {
	var days []int
	for d := 1; d <= today; d++ {
		if time.Date(year, month, d, 0, 0, 0, 0, time.UTC).Weekday() == s.weekday {
			days = append(days, d)
		}
	}
	return days
}

type monthlySchedule struct {
	day int
}

func (s monthlySchedule) dueDays(_ int, _ time.Month, daysInMonth, today int) []int {
	day := s.day
	if day > daysInMonth {
		day = daysInMonth
	}
	if day > today {
		return nil
	}
	return []int{day}
}

type yearlySchedule struct {
	month time.Month
	day   int
}

func (s yearlySchedule) dueDays(_ int, month time.Month, daysInMonth, today int) []int {
	if month != s.month {
		return nil
	}
	return monthlySchedule{day: s.day}.dueDays(0, month, daysInMonth, today)
}

// scheduleFromTemplate builds the schedule variant for a template.
// Weekly templates default to Monday, monthly and yearly ones to the 1st.
// Yearly templates fire in the month the template was created.
func scheduleFromTemplate(tmpl *sqlconfig.RecurringTemplate) (schedule, error) {
	switch tmpl.Frequency {
	case sqlconfig.FrequencyDaily:
		return dailySchedule{}, nil

	case sqlconfig.FrequencyWeekly:
		day := int64(0)
		if tmpl.Day.Valid {
			day = tmpl.Day.Int64
		}
		if day < 0 || day > 6 {
			return nil, ErrInvalidTemplate
		}
		return weeklySchedule{weekday: time.Weekday((day + 1) % 7)}, nil

	case sqlconfig.FrequencyMonthly:
		day := int64(1)
		if tmpl.Day.Valid {
			day = tmpl.Day.Int64
		}
		if day < 1 || day > 31 {
			return nil, ErrInvalidTemplate
		}
		return monthlySchedule{day: int(day)}, nil

	case sqlconfig.FrequencyYearly:
		day := int64(1)
		if tmpl.Day.Valid {
			day = tmpl.Day.Int64
		}
		if day < 1 || day > 31 {
			return nil, ErrInvalidTemplate
		}
		return yearlySchedule{
			month: tmpl.CreatedAt.UTC().Month(),
			day:   int(day),
		}, nil

	default:
		return nil, ErrInvalidTemplate
	}
}

// ExpandSchedule returns the dates a template is due in now's month, at
// midnight UTC, in ascending order.
func ExpandSchedule(tmpl *sqlconfig.RecurringTemplate, now time.Time) ([]time.Time, error) {
	sched, err := scheduleFromTemplate(tmpl)
	if err != nil {
		return nil, err
	}

	now = now.UTC()
	year, month := now.Year(), now.Month()
	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	days := sched.dueDays(year, month, daysInMonth, now.Day())
	dates := make([]time.Time, len(days))
	for i, d := range days {
		dates[i] = time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
	}
	return dates, nil
}
