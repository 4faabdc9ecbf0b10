package attendance

import (
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/worktime"
)

// Summary aggregates one employee's attendance records over an inclusive
// date range.
type Summary struct {
	DaysPresent                 int
	DaysAbsent                  int
	DaysUnrecorded              int
	TotalMinutes                int
	AverageMinutesPerPresentDay int
}

// CalendarDays returns the number of calendar days in [start, end], both
// endpoints inclusive. An inverted range counts as zero days.
func CalendarDays(start, end time.Time) int {
	days := int(end.Sub(start).Hours()/24) + 1
	if days < 0 {
		return 0
	}
	return days
}

// Aggregate computes presence counts and worked time for one employee's
// records within [start, end]. Absent records contribute no minutes; present
// records missing either clock value contribute zero. Days with no record at
// all count as unrecorded, so present + absent + unrecorded always equals the
// calendar day count of the range.
func Aggregate(records []Attendance, start, end time.Time) Summary {
	var s Summary

	for _, r := range records {
		if !r.Present {
			s.DaysAbsent++
			continue
		}
		s.DaysPresent++
		if r.CheckIn != nil && r.CheckOut != nil {
			s.TotalMinutes += worktime.MinutesBetween(*r.CheckIn, *r.CheckOut)
		}
	}

	s.DaysUnrecorded = CalendarDays(start, end) - (s.DaysPresent + s.DaysAbsent)

	if s.DaysPresent > 0 {
		s.AverageMinutesPerPresentDay = s.TotalMinutes / s.DaysPresent
	}

	return s
}

// WorkedMinutes returns the minutes worked on a single record, zero unless
// the record is present with both clock values set.
func WorkedMinutes(r Attendance) int {
	if !r.Present || r.CheckIn == nil || r.CheckOut == nil {
		return 0
	}
	return worktime.MinutesBetween(*r.CheckIn, *r.CheckOut)
}
