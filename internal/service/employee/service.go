package employee

import (
	"context"
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/employee"
	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
)

type EmployeeServiceImpl struct {
	employee.EmployeeRepository
	site.SiteRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository, siteRepo site.SiteRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		EmployeeRepository: employeeRepo,
		SiteRepository:     siteRepo,
	}
}

// ListActiveBySite implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListActiveBySite(ctx context.Context, siteID string) ([]employee.EmployeeResponse, error) {
	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return nil, err
	}

	employees, err := s.EmployeeRepository.GetActiveBySiteID(ctx, siteID)
	if err != nil {
		return nil, err
	}

	result := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		result = append(result, employee.ToEmployeeResponse(emp))
	}
	return result, nil
}

// Create implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Create(ctx context.Context, siteID string, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	if _, err := s.SiteRepository.GetByID(ctx, siteID); err != nil {
		return employee.EmployeeResponse{}, err
	}

	created, err := s.EmployeeRepository.Create(ctx, employee.Employee{
		SiteID:     siteID,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		BirthDate:  parseDatePtr(req.BirthDate),
		NationalID: req.NationalID,
		Category:   employee.Category(req.Category),
		HireDate:   parseDatePtr(req.HireDate),
	})
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(created), nil
}

// Update implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, siteID, employeeID string, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	if emp.SiteID != siteID {
		return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
	}

	emp.FirstName = req.FirstName
	emp.LastName = req.LastName
	emp.BirthDate = parseDatePtr(req.BirthDate)
	emp.NationalID = req.NationalID
	emp.Category = employee.Category(req.Category)
	emp.HireDate = parseDatePtr(req.HireDate)

	updated, err := s.EmployeeRepository.Update(ctx, emp)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}

	return employee.ToEmployeeResponse(updated), nil
}

// Deactivate implements employee.EmployeeService. Employees are never hard
// deleted; removal clears the active flag.
func (s *EmployeeServiceImpl) Deactivate(ctx context.Context, siteID, employeeID string) error {
	emp, err := s.EmployeeRepository.GetByID(ctx, employeeID)
	if err != nil {
		return err
	}
	if emp.SiteID != siteID {
		return employee.ErrEmployeeNotFound
	}

	return s.EmployeeRepository.Deactivate(ctx, employeeID)
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", *s)
	if err != nil {
		return nil
	}
	return &t
}
