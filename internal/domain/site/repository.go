package site

import "context"

type SiteRepository interface {
	List(ctx context.Context) ([]Site, error)
	Create(ctx context.Context, newSite Site) (Site, error)
	GetByID(ctx context.Context, id string) (Site, error)
}
