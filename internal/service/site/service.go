package site

import (
	"context"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
)

type SiteServiceImpl struct {
	site.SiteRepository
}

func NewSiteService(siteRepo site.SiteRepository) site.SiteService {
	return &SiteServiceImpl{SiteRepository: siteRepo}
}

// List implements site.SiteService.
func (s *SiteServiceImpl) List(ctx context.Context) ([]site.SiteResponse, error) {
	sites, err := s.SiteRepository.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]site.SiteResponse, 0, len(sites))
	for _, st := range sites {
		result = append(result, site.ToSiteResponse(st))
	}
	return result, nil
}

// Create implements site.SiteService.
func (s *SiteServiceImpl) Create(ctx context.Context, req site.CreateSiteRequest) (site.SiteResponse, error) {
	if err := req.Validate(); err != nil {
		return site.SiteResponse{}, err
	}

	created, err := s.SiteRepository.Create(ctx, site.Site{
		Name:     req.Name,
		Location: req.Location,
	})
	if err != nil {
		return site.SiteResponse{}, err
	}

	return site.ToSiteResponse(created), nil
}

// GetByID implements site.SiteService.
func (s *SiteServiceImpl) GetByID(ctx context.Context, id string) (site.SiteResponse, error) {
	st, err := s.SiteRepository.GetByID(ctx, id)
	if err != nil {
		return site.SiteResponse{}, err
	}
	return site.ToSiteResponse(st), nil
}
