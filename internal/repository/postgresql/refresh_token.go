package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/obracontrol/asistencia-backend-go/internal/pkg/database"
)

// RefreshTokenRepository persists issued refresh tokens so sessions can be
// revoked server-side.
type RefreshTokenRepository interface {
	Store(ctx context.Context, userID, token string, expiresAt int64) error
	IsActive(ctx context.Context, token string) (userID string, active bool, err error)
	Revoke(ctx context.Context, token string) error
}

type refreshTokenRepository struct {
	db *database.DB
}

func NewRefreshTokenRepository(db *database.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Store implements RefreshTokenRepository.
func (r *refreshTokenRepository) Store(ctx context.Context, userID, token string, expiresAt int64) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO refresh_tokens (id, user_id, token, expires_at, revoked, created_at)
		VALUES (uuidv7(), $1, $2, $3, FALSE, NOW())
	`

	_, err := q.Exec(ctx, query, userID, token, time.Unix(expiresAt, 0))
	if err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}

	return nil
}

// IsActive implements RefreshTokenRepository.
func (r *refreshTokenRepository) IsActive(ctx context.Context, token string) (string, bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id, revoked, expires_at
		FROM refresh_tokens
		WHERE token = $1
	`

	var (
		userID    string
		revoked   bool
		expiresAt time.Time
	)
	err := q.QueryRow(ctx, query, token).Scan(&userID, &revoked, &expiresAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to look up refresh token: %w", err)
	}

	if revoked || time.Now().After(expiresAt) {
		return userID, false, nil
	}

	return userID, true, nil
}

// Revoke implements RefreshTokenRepository.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx, `UPDATE refresh_tokens SET revoked = TRUE WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("failed to revoke refresh token: %w", err)
	}

	return nil
}
