package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/domain/site"
	"github.com/obracontrol/asistencia-backend-go/internal/pkg/database"
)

type siteRepository struct {
	db *database.DB
}

func NewSiteRepository(db *database.DB) site.SiteRepository {
	return &siteRepository{db: db}
}

// List implements site.SiteRepository.
func (s *siteRepository) List(ctx context.Context) ([]site.Site, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, location, created_at, updated_at
		FROM sites
		ORDER BY name ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	defer rows.Close()

	var sites []site.Site
	for rows.Next() {
		var st site.Site
		if err := rows.Scan(&st.ID, &st.Name, &st.Location, &st.CreatedAt, &st.UpdatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, st)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return sites, nil
}

// Create implements site.SiteRepository.
func (s *siteRepository) Create(ctx context.Context, newSite site.Site) (site.Site, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO sites (id, name, location, created_at, updated_at)
		VALUES (uuidv7(), $1, $2, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query, newSite.Name, newSite.Location).
		Scan(&newSite.ID, &newSite.CreatedAt, &newSite.UpdatedAt)
	if err != nil {
		return site.Site{}, fmt.Errorf("failed to create site: %w", err)
	}

	return newSite, nil
}

// GetByID implements site.SiteRepository.
func (s *siteRepository) GetByID(ctx context.Context, id string) (site.Site, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT id, name, location, created_at, updated_at
		FROM sites
		WHERE id = $1
	`

	var st site.Site
	err := q.QueryRow(ctx, query, id).Scan(&st.ID, &st.Name, &st.Location, &st.CreatedAt, &st.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return site.Site{}, site.ErrSiteNotFound
		}
		return site.Site{}, fmt.Errorf("failed to get site by ID: %w", err)
	}

	return st, nil
}
