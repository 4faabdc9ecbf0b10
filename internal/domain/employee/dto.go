package employee

import (
	"context"
	"fmt"
	"time"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
)

type CreateEmployeeRequest struct {
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	BirthDate  *string `json:"birth_date"`
	NationalID string  `json:"national_id"`
	Category   string  `json:"category"`
	HireDate   *string `json:"hire_date"`
}

func (r *CreateEmployeeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FirstName) {
		errs = append(errs, validator.ValidationError{
			Field:   "first_name",
			Message: "first_name is required",
		})
	}
	if validator.IsEmpty(r.LastName) {
		errs = append(errs, validator.ValidationError{
			Field:   "last_name",
			Message: "last_name is required",
		})
	}
	if validator.IsEmpty(r.NationalID) {
		errs = append(errs, validator.ValidationError{
			Field:   "national_id",
			Message: "national_id is required",
		})
	}
	if validator.IsEmpty(r.Category) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category is required",
		})
	} else if !IsValidCategory(Category(r.Category)) {
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: fmt.Sprintf("category must be one of: %v", AllCategories),
		})
	}
	if r.BirthDate != nil && *r.BirthDate != "" {
		if _, ok := validator.IsValidDate(*r.BirthDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "birth_date",
				Message: "birth_date must be a valid YYYY-MM-DD date",
			})
		}
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hire_date",
				Message: "hire_date must be a valid YYYY-MM-DD date",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateEmployeeRequest carries the same fields as create; the employee's
// site assignment and active flag are never updated through this path.
type UpdateEmployeeRequest = CreateEmployeeRequest

type EmployeeResponse struct {
	ID         string  `json:"id"`
	SiteID     string  `json:"site_id"`
	FirstName  string  `json:"first_name"`
	LastName   string  `json:"last_name"`
	BirthDate  *string `json:"birth_date"`
	NationalID string  `json:"national_id"`
	Category   string  `json:"category"`
	HireDate   *string `json:"hire_date"`
	Active     bool    `json:"active"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		SiteID:     e.SiteID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		BirthDate:  formatDatePtr(e.BirthDate),
		NationalID: e.NationalID,
		Category:   string(e.Category),
		HireDate:   formatDatePtr(e.HireDate),
		Active:     e.Active,
	}
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format("2006-01-02")
	return &s
}

type EmployeeService interface {
	ListActiveBySite(ctx context.Context, siteID string) ([]EmployeeResponse, error)
	Create(ctx context.Context, siteID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	Update(ctx context.Context, siteID, employeeID string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Deactivate(ctx context.Context, siteID, employeeID string) error
}
