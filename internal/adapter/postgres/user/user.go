package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainuser "github.com/lanthe421/request-mesh/internal/domain/user"
	portuser "github.com/lanthe421/request-mesh/internal/port/user"
)

type Repository struct {
	pool *pgxpool.Pool
}

var _ portuser.Repository = (*Repository)(nil)

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, u domainuser.User) (domainuser.User, error) {
	query := `
		INSERT INTO users (id, identifier, created_at)
		VALUES ($1,$2,$3)
		ON CONFLICT (identifier) DO UPDATE SET identifier = EXCLUDED.identifier
		RETURNING id, identifier, created_at`

	// The upsert makes concurrent first-contact creations for the same
	// identifier converge on one row.
	var created domainuser.User
	err := r.pool.QueryRow(ctx, query, u.ID, u.Identifier, u.CreatedAt).Scan(
		&created.ID, &created.Identifier, &created.CreatedAt,
	)
	if err != nil {
		return domainuser.User{}, fmt.Errorf("inserting user: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (domainuser.User, bool, error) {
	var u domainuser.User
	err := r.pool.QueryRow(ctx,
		`SELECT id, identifier, created_at FROM users WHERE identifier = $1`, identifier,
	).Scan(&u.ID, &u.Identifier, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainuser.User{}, false, nil
		}
		return domainuser.User{}, false, fmt.Errorf("querying user: %w", err)
	}
	return u, true, nil
}
