package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/stats"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func day(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeSiteRepo struct {
	sites map[string]site.Site
}

func (f *fakeSiteRepo) List(ctx context.Context) ([]site.Site, error) {
	out := make([]site.Site, 0, len(f.sites))
	for _, s := range f.sites {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSiteRepo) Create(ctx context.Context, newSite site.Site) (site.Site, error) {
	f.sites[newSite.ID] = newSite
	return newSite, nil
}

func (f *fakeSiteRepo) GetByID(ctx context.Context, id string) (site.Site, error) {
	s, ok := f.sites[id]
	if !ok {
		return site.Site{}, site.ErrSiteNotFound
	}
	return s, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (f *fakeEmployeeRepo) GetActiveBySiteID(ctx context.Context, siteID string) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees[newEmployee.ID] = newEmployee
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	return nil
}

type fakeAttendanceRepo struct {
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetBySiteInRange(ctx context.Context, siteID string, from, to time.Time) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, r := range f.records {
		if r.EmployeeID == employeeID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetByEmployeeAndDate(ctx context.Context, siteID, employeeID string, date time.Time) (*attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) GetAllBySite(ctx context.Context, siteID string) ([]attendance.Attendance, error) {
	return nil, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Attendance) error {
	return nil
}

func TestStatsService_EmployeeStats_Month(t *testing.T) {
	ctx := context.Background()

	// Setup: two present days (570 + 480 minutes) and one absence in April.
	siteRepo := &fakeSiteRepo{sites: map[string]site.Site{
		"site-1": {ID: "site-1", Name: "Edificio Norte"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {
			ID: "emp-1", SiteID: "site-1",
			FirstName: "Ana", LastName: "Gomez",
			NationalID: "30111222", Category: employee.CategorySkilled, Active: true,
		},
	}}
	attendanceRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{EmployeeID: "emp-1", Date: day("2025-04-02"), Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("17:30")},
		{EmployeeID: "emp-1", Date: day("2025-04-03"), Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("16:00")},
		{EmployeeID: "emp-1", Date: day("2025-04-04"), Present: false, Note: strPtr("enfermo")},
	}}
	svc := NewStatsService(attendanceRepo, employeeRepo, siteRepo)

	// Act
	resp, err := svc.EmployeeStats(ctx, stats.EmployeeStatsRequest{
		EmployeeID: "emp-1",
		PeriodType: stats.PeriodMonth,
		Year:       2025,
		Month:      time.April,
	})

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "Ana Gomez", resp.Employee.Name)
	assert.Equal(t, "Edificio Norte", resp.Employee.Site)
	assert.Equal(t, "oficial", resp.Employee.Category)

	assert.Equal(t, "2025-04-01", resp.Period.Start)
	assert.Equal(t, "2025-04-30", resp.Period.End)
	assert.Equal(t, 30, resp.Period.Days)

	assert.Equal(t, 2, resp.Statistics.DaysPresent)
	assert.Equal(t, 1, resp.Statistics.DaysAbsent)
	assert.Equal(t, 27, resp.Statistics.DaysUnrecorded)
	assert.Equal(t, 1050, resp.Statistics.TotalMinutes)
	assert.Equal(t, 17.5, resp.Statistics.TotalHours)
	assert.Equal(t, 8.75, resp.Statistics.AverageHours)

	require.Len(t, resp.Detail, 3)
	assert.Equal(t, "2025-04-02", resp.Detail[0].Date)
	assert.Equal(t, 9.5, resp.Detail[0].Hours)
	assert.False(t, resp.Detail[2].Present)
	assert.Equal(t, 0.0, resp.Detail[2].Hours)
	assert.Equal(t, "enfermo", *resp.Detail[2].Note)
}

func TestStatsService_EmployeeStats_HalfPeriod(t *testing.T) {
	ctx := context.Background()

	siteRepo := &fakeSiteRepo{sites: map[string]site.Site{
		"site-1": {ID: "site-1", Name: "Edificio Norte"},
	}}
	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", SiteID: "site-1", FirstName: "Ana", LastName: "Gomez", Category: employee.CategoryHelper},
	}}
	svc := NewStatsService(&fakeAttendanceRepo{}, employeeRepo, siteRepo)

	resp, err := svc.EmployeeStats(ctx, stats.EmployeeStatsRequest{
		EmployeeID: "emp-1",
		PeriodType: stats.PeriodHalf,
		Year:       2024,
		Month:      time.February,
		Half:       2,
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-02-16", resp.Period.Start)
	assert.Equal(t, "2024-02-29", resp.Period.End)
	assert.Equal(t, 14, resp.Period.Days)
	assert.Equal(t, 14, resp.Statistics.DaysUnrecorded)
}

func TestStatsService_EmployeeStats_SiteGoneStillReports(t *testing.T) {
	ctx := context.Background()

	employeeRepo := &fakeEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", SiteID: "site-gone", FirstName: "Ana", LastName: "Gomez"},
	}}
	svc := NewStatsService(&fakeAttendanceRepo{}, employeeRepo, &fakeSiteRepo{sites: map[string]site.Site{}})

	resp, err := svc.EmployeeStats(ctx, stats.EmployeeStatsRequest{
		EmployeeID: "emp-1",
		PeriodType: stats.PeriodMonth,
		Year:       2025,
		Month:      time.January,
	})

	require.NoError(t, err)
	assert.Equal(t, "", resp.Employee.Site)
}

func TestStatsService_EmployeeStats_EmployeeNotFound(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{employees: map[string]employee.Employee{}}, &fakeSiteRepo{sites: map[string]site.Site{}})

	_, err := svc.EmployeeStats(ctx, stats.EmployeeStatsRequest{
		EmployeeID: "missing",
		PeriodType: stats.PeriodMonth,
		Year:       2025,
		Month:      time.January,
	})

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestStatsService_EmployeeStats_InvalidPeriod(t *testing.T) {
	ctx := context.Background()
	svc := NewStatsService(&fakeAttendanceRepo{}, &fakeEmployeeRepo{}, &fakeSiteRepo{})

	_, err := svc.EmployeeStats(ctx, stats.EmployeeStatsRequest{
		EmployeeID: "emp-1",
		PeriodType: "quarter",
		Year:       2025,
		Month:      time.January,
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "period_type")
}
