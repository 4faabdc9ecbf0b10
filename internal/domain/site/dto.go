package site

import (
	"context"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/validator"
)

type CreateSiteRequest struct {
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

func (r *CreateSiteRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 255 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 255 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type SiteResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
}

func ToSiteResponse(s Site) SiteResponse {
	return SiteResponse{
		ID:       s.ID,
		Name:     s.Name,
		Location: s.Location,
	}
}

type SiteService interface {
	List(ctx context.Context) ([]SiteResponse, error)
	Create(ctx context.Context, req CreateSiteRequest) (SiteResponse, error)
	GetByID(ctx context.Context, id string) (SiteResponse, error)
}
