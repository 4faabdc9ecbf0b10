package attendance

import (
	"context"
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/database"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/worktime"
	"github.com/obracontrol/asistencia-backend-go/internal/repository/postgresql"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	employee.EmployeeRepository
	site.SiteRepository
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	siteRepo site.SiteRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		SiteRepository:       siteRepo,
	}
}

// DailySnapshot implements attendance.AttendanceService. Every active
// employee of the site appears exactly once; employees without a record for
// the date render as absent with empty times.
func (s *AttendanceServiceImpl) DailySnapshot(ctx context.Context, siteID string, date time.Time) ([]attendance.DailySnapshotRow, error) {
	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.GetActiveBySiteID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []attendance.DailySnapshotRow{}, nil
	}

	records, err := s.AttendanceRepository.GetBySiteAndDate(ctx, siteID, date)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string]attendance.Attendance, len(records))
	for _, r := range records {
		byEmployee[r.EmployeeID] = r
	}

	rows := make([]attendance.DailySnapshotRow, 0, len(employees))
	for _, emp := range employees {
		row := attendance.DailySnapshotRow{
			EmployeeID: emp.ID,
			FirstName:  emp.FirstName,
			LastName:   emp.LastName,
			NationalID: emp.NationalID,
			Category:   string(emp.Category),
		}
		if rec, ok := byEmployee[emp.ID]; ok {
			row.Present = rec.Present
			row.CheckIn = rec.CheckIn
			row.CheckOut = rec.CheckOut
			if rec.Note != nil {
				row.Note = *rec.Note
			}
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// RangeSummary implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) RangeSummary(ctx context.Context, siteID string, from, to time.Time) ([]attendance.RangeSummaryRow, error) {
	if to.Before(from) {
		return nil, validator.ValidationErrors{{
			Field:   "to",
			Message: "to must not be before from",
		}}
	}

	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.GetActiveBySiteID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return []attendance.RangeSummaryRow{}, nil
	}

	records, err := s.AttendanceRepository.GetBySiteInRange(ctx, siteID, from, to)
	if err != nil {
		return nil, err
	}

	byEmployee := make(map[string][]attendance.Attendance)
	for _, r := range records {
		byEmployee[r.EmployeeID] = append(byEmployee[r.EmployeeID], r)
	}

	rows := make([]attendance.RangeSummaryRow, 0, len(employees))
	for _, emp := range employees {
		regs := byEmployee[emp.ID]
		summary := attendance.Aggregate(regs, from, to)

		rows = append(rows, attendance.RangeSummaryRow{
			EmployeeID:   emp.ID,
			FirstName:    emp.FirstName,
			LastName:     emp.LastName,
			NationalID:   emp.NationalID,
			Category:     string(emp.Category),
			DaysPresent:  summary.DaysPresent,
			DaysAbsent:   summary.DaysAbsent,
			TotalRecords: len(regs),
			HoursWorked:  worktime.FormatDuration(summary.TotalMinutes),
			TotalMinutes: summary.TotalMinutes,
		})
	}

	return rows, nil
}

// History implements attendance.AttendanceService. Records arrive ordered by
// date descending, so grouping in encounter order keeps newest dates first.
func (s *AttendanceServiceImpl) History(ctx context.Context, siteID string) ([]attendance.HistoryRow, error) {
	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	records, err := s.AttendanceRepository.GetAllBySite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	rows := []attendance.HistoryRow{}
	index := make(map[string]int)
	for _, r := range records {
		key := r.Date.Format("2006-01-02")
		i, ok := index[key]
		if !ok {
			i = len(rows)
			index[key] = i
			rows = append(rows, attendance.HistoryRow{Date: key})
		}
		rows[i].TotalCount++
		if r.Present {
			rows[i].PresentCount++
		}
	}

	return rows, nil
}

// Submit implements attendance.AttendanceService. The whole batch is
// validated first and then written inside one transaction, so a bad entry
// means nothing of the batch is persisted.
func (s *AttendanceServiceImpl) Submit(ctx context.Context, siteID string, req attendance.SubmitRequest) (attendance.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.SubmitResponse{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return attendance.SubmitResponse{}, err
	}

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		for _, entry := range req.Records {
			emp, err := s.EmployeeRepository.GetByID(txCtx, entry.EmployeeID)
			if err != nil {
				return err
			}
			if emp.SiteID != siteID {
				return employee.ErrEmployeeNotFound
			}

			existing, err := s.AttendanceRepository.GetByEmployeeAndDate(txCtx, siteID, entry.EmployeeID, date)
			if err != nil {
				return err
			}

			rec := mergeEntry(siteID, entry, date, existing)
			if err := s.AttendanceRepository.Upsert(txCtx, rec); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return attendance.SubmitResponse{}, err
	}

	return attendance.SubmitResponse{Date: req.Date, Records: len(req.Records)}, nil
}

// mergeEntry computes the stored record for one submission entry. A present
// entry keeps the previously stored check-in when the new one is absent, so
// a correction that only touches other fields cannot wipe a known check-in.
// Check-out is never inherited: it is taken from the entry or dropped. An
// absent entry carries no clock values at all.
func mergeEntry(siteID string, entry attendance.SubmitEntry, date time.Time, existing *attendance.Attendance) attendance.Attendance {
	rec := attendance.Attendance{
		SiteID:     siteID,
		EmployeeID: entry.EmployeeID,
		Date:       date,
		Present:    entry.Present,
		Note:       entry.Note,
	}

	if !entry.Present {
		return rec
	}

	switch {
	case entry.CheckIn != nil && *entry.CheckIn != "":
		rec.CheckIn = entry.CheckIn
	case existing != nil && existing.CheckIn != nil:
		rec.CheckIn = existing.CheckIn
	}

	if entry.CheckOut != nil && *entry.CheckOut != "" {
		rec.CheckOut = entry.CheckOut
	}

	return rec
}
