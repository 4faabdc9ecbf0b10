package stats

import (
	"context"
	"errors"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/stats"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/worktime"
)

type StatsServiceImpl struct {
	attendance.AttendanceRepository
	employee.EmployeeRepository
	site.SiteRepository
}

func NewStatsService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
	siteRepo site.SiteRepository,
) stats.StatsService {
	return &StatsServiceImpl{
		AttendanceRepository: attendanceRepo,
		EmployeeRepository:   employeeRepo,
		SiteRepository:       siteRepo,
	}
}

// EmployeeStats implements stats.StatsService. The period is resolved to
// concrete bounds, the employee's records in that window are aggregated, and
// the response bundles identity, bounds, totals and a per-day detail list.
func (s *StatsServiceImpl) EmployeeStats(ctx context.Context, req stats.EmployeeStatsRequest) (stats.EmployeeStatsResponse, error) {
	period, err := stats.ResolvePeriod(req.PeriodType, req.Year, req.Month, req.Half)
	if err != nil {
		return stats.EmployeeStatsResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return stats.EmployeeStatsResponse{}, err
	}

	siteName := ""
	st, err := s.SiteRepository.GetByID(ctx, emp.SiteID)
	switch {
	case err == nil:
		siteName = st.Name
	case errors.Is(err, site.ErrSiteNotFound):
		// employee without a resolvable site still gets statistics
	default:
		return stats.EmployeeStatsResponse{}, err
	}

	records, err := s.AttendanceRepository.GetByEmployeeInRange(ctx, emp.ID, period.Start, period.End)
	if err != nil {
		return stats.EmployeeStatsResponse{}, err
	}

	summary := attendance.Aggregate(records, period.Start, period.End)

	detail := make([]stats.DayDetail, 0, len(records))
	for _, r := range records {
		detail = append(detail, stats.DayDetail{
			Date:     r.Date.Format("2006-01-02"),
			Present:  r.Present,
			CheckIn:  r.CheckIn,
			CheckOut: r.CheckOut,
			Hours:    worktime.MinutesToHours(attendance.WorkedMinutes(r)),
			Note:     r.Note,
		})
	}

	return stats.EmployeeStatsResponse{
		Employee: stats.EmployeeInfo{
			ID:         emp.ID,
			Name:       emp.FirstName + " " + emp.LastName,
			Category:   string(emp.Category),
			NationalID: emp.NationalID,
			Site:       siteName,
		},
		Period: stats.PeriodInfo{
			Type:  period.Type,
			Start: period.Start.Format("2006-01-02"),
			End:   period.End.Format("2006-01-02"),
			Days:  attendance.CalendarDays(period.Start, period.End),
			Half:  period.Half,
		},
		Statistics: stats.Figures{
			DaysPresent:    summary.DaysPresent,
			DaysAbsent:     summary.DaysAbsent,
			DaysUnrecorded: summary.DaysUnrecorded,
			TotalMinutes:   summary.TotalMinutes,
			TotalHours:     worktime.MinutesToHours(summary.TotalMinutes),
			AverageHours:   worktime.MinutesToHours(summary.AverageMinutesPerPresentDay),
		},
		Detail: detail,
	}, nil
}
