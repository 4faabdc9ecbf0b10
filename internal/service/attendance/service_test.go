package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
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
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetActiveBySiteID(ctx context.Context, siteID string) ([]employee.Employee, error) {
	out := []employee.Employee{}
	for _, e := range f.employees {
		if e.SiteID == siteID && e.Active {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, newEmployee employee.Employee) (employee.Employee, error) {
	f.employees = append(f.employees, newEmployee)
	return newEmployee, nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, emp employee.Employee) (employee.Employee, error) {
	for i, e := range f.employees {
		if e.ID == emp.ID {
			f.employees[i] = emp
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Deactivate(ctx context.Context, id string) error {
	for i, e := range f.employees {
		if e.ID == id {
			f.employees[i].Active = false
			return nil
		}
	}
	return employee.ErrEmployeeNotFound
}

type fakeAttendanceRepo struct {
	records  []attendance.Attendance
	upserted []attendance.Attendance
}

func (f *fakeAttendanceRepo) GetBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, r := range f.records {
		if r.SiteID == siteID && r.Date.Equal(date) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) GetBySiteInRange(ctx context.Context, siteID string, from, to time.Time) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, r := range f.records {
		if r.SiteID == siteID && !r.Date.Before(from) && !r.Date.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
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
	for _, r := range f.records {
		if r.SiteID == siteID && r.EmployeeID == employeeID && r.Date.Equal(date) {
			rec := r
			return &rec, nil
		}
	}
	return nil, nil
}

func (f *fakeAttendanceRepo) GetAllBySite(ctx context.Context, siteID string) ([]attendance.Attendance, error) {
	out := []attendance.Attendance{}
	for _, r := range f.records {
		if r.SiteID == siteID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) Upsert(ctx context.Context, rec attendance.Attendance) error {
	f.upserted = append(f.upserted, rec)
	return nil
}

func newTestService(siteRepo *fakeSiteRepo, employeeRepo *fakeEmployeeRepo, attendanceRepo *fakeAttendanceRepo) attendance.AttendanceService {
	return NewAttendanceService(nil, attendanceRepo, employeeRepo, siteRepo)
}

func testSite() *fakeSiteRepo {
	return &fakeSiteRepo{sites: map[string]site.Site{
		"site-1": {ID: "site-1", Name: "Edificio Norte"},
	}}
}

func TestAttendanceService_DailySnapshot_IncludesAllActiveEmployees(t *testing.T) {
	ctx := context.Background()

	// Setup
	siteRepo := testSite()
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", SiteID: "site-1", FirstName: "Ana", LastName: "Gomez", Category: employee.CategorySkilled, Active: true},
		{ID: "emp-2", SiteID: "site-1", FirstName: "Luis", LastName: "Perez", Category: employee.CategoryHelper, Active: true},
	}}
	attendanceRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-10"), Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("17:30")},
	}}
	svc := newTestService(siteRepo, employeeRepo, attendanceRepo)

	// Act
	rows, err := svc.DailySnapshot(ctx, "site-1", day("2025-03-10"))

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "emp-1", rows[0].EmployeeID)
	assert.True(t, rows[0].Present)
	assert.Equal(t, "08:00", *rows[0].CheckIn)
	assert.Equal(t, "17:30", *rows[0].CheckOut)

	assert.Equal(t, "emp-2", rows[1].EmployeeID)
	assert.False(t, rows[1].Present)
	assert.Nil(t, rows[1].CheckIn)
	assert.Nil(t, rows[1].CheckOut)
}

func TestAttendanceService_DailySnapshot_SiteNotFound(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(testSite(), &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	_, err := svc.DailySnapshot(ctx, "missing", day("2025-03-10"))

	assert.ErrorIs(t, err, site.ErrSiteNotFound)
}

func TestAttendanceService_RangeSummary(t *testing.T) {
	ctx := context.Background()

	// Setup: two present days (570 + 480 minutes) and one explicit absence
	// within a four day window.
	siteRepo := testSite()
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{ID: "emp-1", SiteID: "site-1", FirstName: "Ana", LastName: "Gomez", Category: employee.CategoryForeman, Active: true},
	}}
	attendanceRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-10"), Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("17:30")},
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-11"), Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("16:00")},
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-12"), Present: false},
	}}
	svc := newTestService(siteRepo, employeeRepo, attendanceRepo)

	// Act
	rows, err := svc.RangeSummary(ctx, "site-1", day("2025-03-10"), day("2025-03-13"))

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].DaysPresent)
	assert.Equal(t, 1, rows[0].DaysAbsent)
	assert.Equal(t, 3, rows[0].TotalRecords)
	assert.Equal(t, 1050, rows[0].TotalMinutes)
	assert.Equal(t, "17h 30m", rows[0].HoursWorked)
}

func TestAttendanceService_RangeSummary_InvertedRange(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(testSite(), &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	_, err := svc.RangeSummary(ctx, "site-1", day("2025-03-13"), day("2025-03-10"))

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Equal(t, "to", verrs[0].Field)
}

func TestAttendanceService_History_GroupsByDateNewestFirst(t *testing.T) {
	ctx := context.Background()

	// Setup: the repository returns records ordered by date descending.
	attendanceRepo := &fakeAttendanceRepo{records: []attendance.Attendance{
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-11"), Present: true},
		{SiteID: "site-1", EmployeeID: "emp-2", Date: day("2025-03-11"), Present: false},
		{SiteID: "site-1", EmployeeID: "emp-1", Date: day("2025-03-10"), Present: true},
	}}
	svc := newTestService(testSite(), &fakeEmployeeRepo{}, attendanceRepo)

	// Act
	rows, err := svc.History(ctx, "site-1")

	// Assert
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "2025-03-11", rows[0].Date)
	assert.Equal(t, 1, rows[0].PresentCount)
	assert.Equal(t, 2, rows[0].TotalCount)
	assert.Equal(t, "2025-03-10", rows[1].Date)
	assert.Equal(t, 1, rows[1].PresentCount)
	assert.Equal(t, 1, rows[1].TotalCount)
}

func TestAttendanceService_Submit_RejectsInvalidBatch(t *testing.T) {
	ctx := context.Background()
	attendanceRepo := &fakeAttendanceRepo{}
	svc := newTestService(testSite(), &fakeEmployeeRepo{}, attendanceRepo)

	// Present entry without a check-in fails validation before anything is
	// written.
	req := attendance.SubmitRequest{
		Date: "2025-03-10",
		Records: []attendance.SubmitEntry{
			{EmployeeID: "emp-1", Present: true},
		},
	}
	_, err := svc.Submit(ctx, "site-1", req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "records[0].check_in")
	assert.Empty(t, attendanceRepo.upserted)
}

func TestAttendanceService_Submit_EmptyBatchRejected(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(testSite(), &fakeEmployeeRepo{}, &fakeAttendanceRepo{})

	req := attendance.SubmitRequest{Date: "2025-03-10"}
	_, err := svc.Submit(ctx, "site-1", req)

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "records")
}

func TestMergeEntry(t *testing.T) {
	date := day("2025-03-10")

	t.Run("present entry keeps its own clocks", func(t *testing.T) {
		entry := attendance.SubmitEntry{EmployeeID: "emp-1", Present: true, CheckIn: strPtr("08:00"), CheckOut: strPtr("17:00")}
		rec := mergeEntry("site-1", entry, date, nil)

		assert.True(t, rec.Present)
		assert.Equal(t, "08:00", *rec.CheckIn)
		assert.Equal(t, "17:00", *rec.CheckOut)
	})

	t.Run("missing check-in falls back to stored value", func(t *testing.T) {
		existing := &attendance.Attendance{Present: true, CheckIn: strPtr("07:45"), CheckOut: strPtr("16:00")}
		entry := attendance.SubmitEntry{EmployeeID: "emp-1", Present: true, CheckOut: strPtr("17:00")}
		rec := mergeEntry("site-1", entry, date, existing)

		assert.Equal(t, "07:45", *rec.CheckIn)
		assert.Equal(t, "17:00", *rec.CheckOut)
	})

	t.Run("check-out is never inherited", func(t *testing.T) {
		existing := &attendance.Attendance{Present: true, CheckIn: strPtr("07:45"), CheckOut: strPtr("16:00")}
		entry := attendance.SubmitEntry{EmployeeID: "emp-1", Present: true, CheckIn: strPtr("08:00")}
		rec := mergeEntry("site-1", entry, date, existing)

		assert.Equal(t, "08:00", *rec.CheckIn)
		assert.Nil(t, rec.CheckOut)
	})

	t.Run("absent entry carries no clocks", func(t *testing.T) {
		existing := &attendance.Attendance{Present: true, CheckIn: strPtr("07:45"), CheckOut: strPtr("16:00")}
		entry := attendance.SubmitEntry{EmployeeID: "emp-1", Present: false, CheckIn: strPtr("08:00"), CheckOut: strPtr("17:00")}
		rec := mergeEntry("site-1", entry, date, existing)

		assert.False(t, rec.Present)
		assert.Nil(t, rec.CheckIn)
		assert.Nil(t, rec.CheckOut)
	})
}
