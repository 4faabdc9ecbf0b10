package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/worktime"
)

// SubmitEntry is one employee's row in an attendance submission batch.
type SubmitEntry struct {
	EmployeeID string  `json:"employee_id"`
	Present    bool    `json:"present"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Note       *string `json:"note"`
}

type SubmitRequest struct {
	Date    string        `json:"date"`
	Records []SubmitEntry `json:"records"`
}

// Validate checks the whole batch up front. Any violation rejects the entire
// submission so no record of the batch is persisted.
func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be a valid YYYY-MM-DD date",
		})
	}

	if len(r.Records) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: "records must not be empty",
		})
	}

	for i, entry := range r.Records {
		field := fmt.Sprintf("records[%d]", i)

		if validator.IsEmpty(entry.EmployeeID) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".employee_id",
				Message: "employee_id is required",
			})
		}
		if entry.Present && (entry.CheckIn == nil || validator.IsEmpty(*entry.CheckIn)) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".check_in",
				Message: "present employees must have a check-in time",
			})
		}
		if entry.CheckIn != nil && *entry.CheckIn != "" && !worktime.IsValidClock(*entry.CheckIn) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".check_in",
				Message: "check_in must be a valid HH:MM time",
			})
		}
		if entry.CheckOut != nil && *entry.CheckOut != "" && !worktime.IsValidClock(*entry.CheckOut) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".check_out",
				Message: "check_out must be a valid HH:MM time",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SubmitResponse struct {
	Date    string `json:"date"`
	Records int    `json:"records"`
}

// DailySnapshotRow is one employee's line in a single-day report. Employees
// without a record for the day render as absent with empty times; the report
// does not distinguish an explicit absence from a missing record.
type DailySnapshotRow struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	NationalID string  `json:"national_id"`
	Category   string  `json:"category"`
	Present    bool    `json:"present"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Note       string  `json:"note"`
}

// RangeSummaryRow is one employee's line in a date-range report.
type RangeSummaryRow struct {
	EmployeeID   string `json:"employee_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	NationalID   string `json:"national_id"`
	Category     string `json:"category"`
	DaysPresent  int    `json:"days_present"`
	DaysAbsent   int    `json:"days_absent"`
	TotalRecords int    `json:"total_records"`
	HoursWorked  string `json:"hours_worked"`
	TotalMinutes int    `json:"total_minutes"`
}

// HistoryRow is one day's site-wide presence count, newest first.
type HistoryRow struct {
	Date         string `json:"date"`
	PresentCount int    `json:"present_count"`
	TotalCount   int    `json:"total_count"`
}

type AttendanceService interface {
	DailySnapshot(ctx context.Context, siteID string, date time.Time) ([]DailySnapshotRow, error)
	RangeSummary(ctx context.Context, siteID string, from, to time.Time) ([]RangeSummaryRow, error)
	History(ctx context.Context, siteID string) ([]HistoryRow, error)
	Submit(ctx context.Context, siteID string, req SubmitRequest) (SubmitResponse, error)
}
