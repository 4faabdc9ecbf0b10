package attendance

import "time"

// Attendance is one presence/absence entry for one employee on one date at
// one site. At most one row exists per (site, employee, date); writes go
// through an upsert on that key.
//
// CheckIn and CheckOut are "HH:MM" wall-clock strings. An absent record
// carries neither; a present record always carries a check-in, and a nil
// check-out means the employee is still clocked in.
type Attendance struct {
	ID         string
	SiteID     string
	EmployeeID string
	Date       time.Time
	Present    bool
	CheckIn    *string
	CheckOut   *string
	Note       *string
}
