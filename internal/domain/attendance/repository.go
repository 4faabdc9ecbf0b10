package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	// GetBySiteAndDate returns all of a site's records for one date.
	GetBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]Attendance, error)
	// GetBySiteInRange returns a site's records within [from, to] inclusive.
	GetBySiteInRange(ctx context.Context, siteID string, from, to time.Time) ([]Attendance, error)
	// GetByEmployeeInRange returns one employee's records within [from, to]
	// inclusive, ordered by date ascending.
	GetByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]Attendance, error)
	// GetByEmployeeAndDate returns the single record for (site, employee,
	// date), or nil when none exists.
	GetByEmployeeAndDate(ctx context.Context, siteID, employeeID string, date time.Time) (*Attendance, error)
	// GetAllBySite returns every record of a site ordered by date descending.
	GetAllBySite(ctx context.Context, siteID string) ([]Attendance, error)
	// Upsert writes a record keyed by (site, employee, date); an existing row
	// for that key is overwritten, never duplicated.
	Upsert(ctx context.Context, rec Attendance) error
}
