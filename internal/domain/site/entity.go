package site

import "time"

// Site is a construction-site work location ("obra"). It owns employees and
// their attendance records.
type Site struct {
	ID        string
	Name      string
	Location  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
