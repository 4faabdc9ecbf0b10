package attendance

import "errors"

var (
	ErrAttendanceNotFound  = errors.New("attendance record not found")
	ErrPresentWithoutEntry = errors.New("present employees must have a check-in time")
)
