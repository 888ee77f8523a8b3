// Package schedule holds the calendar arithmetic shared by budget periods and
// autopay frequencies.
//
// Month-based steps use time.AddDate, so a date on the 31st normalizes into
// the following month when the target month is shorter (Jan 31 + 1 month is
// Mar 3 in a non-leap year). Month-end schedules drift with month length.
package schedule

import (
	"time"

	"pocketledger/internal/models"
)

// AddPeriod advances t by one budget period.
func AddPeriod(t time.Time, p models.BudgetPeriod) time.Time {
	switch p {
	case models.BudgetPeriodDaily:
		return t.AddDate(0, 0, 1)
	case models.BudgetPeriodWeekly:
		return t.AddDate(0, 0, 7)
	case models.BudgetPeriodMonthly:
		return t.AddDate(0, 1, 0)
	case models.BudgetPeriodQuarterly:
		return t.AddDate(0, 3, 0)
	case models.BudgetPeriodYearly:
		return t.AddDate(0, 12, 0)
	}
	return t
}

// NextExecution advances t by one autopay frequency step.
func NextExecution(t time.Time, f models.Frequency) time.Time {
	switch f {
	case models.FrequencyDaily:
		return t.AddDate(0, 0, 1)
	case models.FrequencyWeekly:
		return t.AddDate(0, 0, 7)
	case models.FrequencyMonthly:
		return t.AddDate(0, 1, 0)
	}
	return t
}

// PeriodLength returns the nominal duration of the period starting at t.
func PeriodLength(t time.Time, p models.BudgetPeriod) time.Duration {
	return AddPeriod(t, p).Sub(t)
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
