package devserver

import (
	"time"

	"ledgerdesk/internal/domain"
)

const dateLayout = "2006-01-02"

// periodRange resolves a named reporting period to a closed date window
// ending today. Unknown or empty periods fall back to the last month.
func periodRange(period domain.Period, now time.Time) domain.DateRange {
	end := now
	var start time.Time
	switch period {
	case domain.PeriodToday:
		start = now
	case domain.PeriodWeek:
		start = now.AddDate(0, 0, -7)
	case domain.PeriodQuarter:
		start = now.AddDate(0, -3, 0)
	case domain.PeriodYear:
		start = now.AddDate(-1, 0, 0)
	case domain.PeriodMonth:
		start = now.AddDate(0, -1, 0)
	default:
		start = now.AddDate(0, -1, 0)
	}
	return domain.DateRange{
		StartDate: start.Format(dateLayout),
		EndDate:   end.Format(dateLayout),
	}
}
