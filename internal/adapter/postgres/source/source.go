package source

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
	portsource "github.com/lanthe421/request-mesh/internal/port/source"
)

type Repository struct {
	pool *pgxpool.Pool
}

var _ portsource.Repository = (*Repository)(nil)

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, s domainsource.Source) (domainsource.Source, error) {
	query := `
		INSERT INTO sources (id, name, identifier, created_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id, name, identifier, created_at`

	var created domainsource.Source
	err := r.pool.QueryRow(ctx, query, s.ID, s.Name, s.Identifier, s.CreatedAt).Scan(
		&created.ID, &created.Name, &created.Identifier, &created.CreatedAt,
	)
	if err != nil {
		return domainsource.Source{}, fmt.Errorf("inserting source: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainsource.Source, error) {
	return r.scanOne(ctx, `SELECT id, name, identifier, created_at FROM sources WHERE id = $1`, id)
}

func (r *Repository) GetByIdentifier(ctx context.Context, identifier string) (domainsource.Source, error) {
	return r.scanOne(ctx, `SELECT id, name, identifier, created_at FROM sources WHERE identifier = $1`, identifier)
}

func (r *Repository) List(ctx context.Context) ([]domainsource.Source, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, identifier, created_at FROM sources ORDER BY created_at ASC`)
	if err != nil {
		return nil, fmt.Errorf("listing sources: %w", err)
	}
	defer rows.Close()

	var sources []domainsource.Source
	for rows.Next() {
		var s domainsource.Source
		if err := rows.Scan(&s.ID, &s.Name, &s.Identifier, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning source row: %w", err)
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func (r *Repository) scanOne(ctx context.Context, query string, args ...interface{}) (domainsource.Source, error) {
	var s domainsource.Source
	err := r.pool.QueryRow(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Identifier, &s.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainsource.Source{}, fmt.Errorf("source not found")
		}
		return domainsource.Source{}, fmt.Errorf("querying source: %w", err)
	}
	return s, nil
}
