package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/attendance"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `id, site_id, employee_id, date, present, check_in, check_out, note`

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Attendance, error) {
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		err := rows.Scan(
			&rec.ID, &rec.SiteID, &rec.EmployeeID, &rec.Date,
			&rec.Present, &rec.CheckIn, &rec.CheckOut, &rec.Note,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// GetBySiteAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetBySiteAndDate(ctx context.Context, siteID string, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE site_id = $1 AND date = $2
	`

	rows, err := q.Query(ctx, query, siteID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance by site and date: %w", err)
	}
	return scanAttendanceRows(rows)
}

// GetBySiteInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetBySiteInRange(ctx context.Context, siteID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE site_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, siteID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance in range: %w", err)
	}
	return scanAttendanceRows(rows)
}

// GetByEmployeeInRange implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeInRange(ctx context.Context, employeeID string, from, to time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE employee_id = $1 AND date BETWEEN $2 AND $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee attendance in range: %w", err)
	}
	return scanAttendanceRows(rows)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, siteID, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE site_id = $1 AND employee_id = $2 AND date = $3
		LIMIT 1
	`

	var rec attendance.Attendance
	err := q.QueryRow(ctx, query, siteID, employeeID, date).Scan(
		&rec.ID, &rec.SiteID, &rec.EmployeeID, &rec.Date,
		&rec.Present, &rec.CheckIn, &rec.CheckOut, &rec.Note,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for that day
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}

// GetAllBySite implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetAllBySite(ctx context.Context, siteID string) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendances
		WHERE site_id = $1
		ORDER BY date DESC
	`

	rows, err := q.Query(ctx, query, siteID)
	if err != nil {
		return nil, fmt.Errorf("failed to get site attendance: %w", err)
	}
	return scanAttendanceRows(rows)
}

// Upsert implements attendance.AttendanceRepository. The unique index on
// (site_id, employee_id, date) turns racing duplicate inserts into updates,
// so resubmitting a day overwrites instead of duplicating.
func (a *attendanceRepository) Upsert(ctx context.Context, rec attendance.Attendance) error {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendances (id, site_id, employee_id, date, present, check_in, check_out, note)
		VALUES (uuidv7(), $1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (site_id, employee_id, date)
		DO UPDATE SET present = EXCLUDED.present,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			note = EXCLUDED.note
	`

	_, err := q.Exec(ctx, query,
		rec.SiteID, rec.EmployeeID, rec.Date,
		rec.Present, rec.CheckIn, rec.CheckOut, rec.Note,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return nil
}
