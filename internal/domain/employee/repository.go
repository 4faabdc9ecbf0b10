package employee

import "context"

type EmployeeRepository interface {
	// GetActiveBySiteID returns the active roster of a site ordered by last
	// name, then first name.
	GetActiveBySiteID(ctx context.Context, siteID string) ([]Employee, error)
	GetByID(ctx context.Context, id string) (Employee, error)
	Create(ctx context.Context, newEmployee Employee) (Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	Deactivate(ctx context.Context, id string) error
}
