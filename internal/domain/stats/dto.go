package stats

import (
	"context"
	"time"
)

// EmployeeStatsRequest is the already-parsed query for one employee's period
// statistics.
type EmployeeStatsRequest struct {
	EmployeeID string
	PeriodType PeriodType
	Year       int
	Month      time.Month
	Half       int
}

type EmployeeInfo struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	NationalID string `json:"national_id"`
	Site       string `json:"site"`
}

type PeriodInfo struct {
	Type  PeriodType `json:"type"`
	Start string     `json:"start"`
	End   string     `json:"end"`
	Days  int        `json:"days"`
	Half  int        `json:"half,omitempty"`
}

type Figures struct {
	DaysPresent    int     `json:"days_present"`
	DaysAbsent     int     `json:"days_absent"`
	DaysUnrecorded int     `json:"days_unrecorded"`
	TotalMinutes   int     `json:"total_minutes"`
	TotalHours     float64 `json:"total_hours"`
	AverageHours   float64 `json:"average_hours_per_present_day"`
}

// DayDetail is one calendar day's record in the statistics detail list.
type DayDetail struct {
	Date     string  `json:"date"`
	Present  bool    `json:"present"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Hours    float64 `json:"hours"`
	Note     *string `json:"note"`
}

type EmployeeStatsResponse struct {
	Employee   EmployeeInfo `json:"employee"`
	Period     PeriodInfo   `json:"period"`
	Statistics Figures      `json:"statistics"`
	Detail     []DayDetail  `json:"detail"`
}

type StatsService interface {
	EmployeeStats(ctx context.Context, req EmployeeStatsRequest) (EmployeeStatsResponse, error)
}
