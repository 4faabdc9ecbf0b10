package stats

import (
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
)

type PeriodType string

const (
	PeriodMonth PeriodType = "month"
	PeriodHalf  PeriodType = "half"
)

// Period is a resolved statistics window with inclusive bounds.
type Period struct {
	Type  PeriodType
	Year  int
	Month time.Month
	Half  int // 0 for month periods, 1 or 2 for half periods
	Start time.Time
	End   time.Time
}

// ResolvePeriod turns a named period into concrete [start, end] dates.
// "month" covers the whole calendar month; "half" covers days 1-15 (half=1)
// or day 16 through the month's last day (half=2). half is required exactly
// when periodType is "half".
func ResolvePeriod(periodType PeriodType, year int, month time.Month, half int) (Period, error) {
	var errs validator.ValidationErrors

	if month < time.January || month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}
	if year <= 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be a positive number",
		})
	}

	switch periodType {
	case PeriodMonth:
	case PeriodHalf:
		if half != 1 && half != 2 {
			errs = append(errs, validator.ValidationError{
				Field:   "half",
				Message: "half is required for half periods and must be 1 or 2",
			})
		}
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "period_type",
			Message: `period_type must be "month" or "half"`,
		})
	}

	if len(errs) > 0 {
		return Period{}, errs
	}

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	p := Period{Type: periodType, Year: year, Month: month}
	switch {
	case periodType == PeriodMonth:
		p.Start, p.End = firstDay, lastDay
	case half == 1:
		p.Half = 1
		p.Start = firstDay
		p.End = time.Date(year, month, 15, 0, 0, 0, 0, time.UTC)
	default:
		p.Half = 2
		p.Start = time.Date(year, month, 16, 0, 0, 0, 0, time.UTC)
		p.End = lastDay
	}

	return p, nil
}
