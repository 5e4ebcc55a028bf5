package request

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	portrequest "github.com/lanthe421/request-mesh/internal/port/request"
)

type Repository struct {
	pool *pgxpool.Pool
}

var _ portrequest.Repository = (*Repository)(nil)

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, req domainrequest.Request) (domainrequest.Request, error) {
	query := `
		INSERT INTO requests (id, user_id, source_id, operator_id, message, status, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7)
		RETURNING id, user_id, source_id, operator_id, message, status, created_at`

	var created domainrequest.Request
	err := r.pool.QueryRow(ctx, query,
		req.ID, req.UserID, req.SourceID, req.OperatorID, req.Message, req.Status, req.CreatedAt,
	).Scan(
		&created.ID, &created.UserID, &created.SourceID, &created.OperatorID,
		&created.Message, &created.Status, &created.CreatedAt,
	)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("inserting request: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainrequest.Request, error) {
	query := `
		SELECT id, user_id, source_id, operator_id, message, status, created_at
		FROM requests WHERE id = $1`

	var req domainrequest.Request
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&req.ID, &req.UserID, &req.SourceID, &req.OperatorID,
		&req.Message, &req.Status, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainrequest.Request{}, fmt.Errorf("request %s not found", id)
		}
		return domainrequest.Request{}, fmt.Errorf("querying request: %w", err)
	}
	return req, nil
}

func (r *Repository) List(ctx context.Context, filters domainrequest.ListFilters) ([]domainrequest.Request, error) {
	query := `
		SELECT id, user_id, source_id, operator_id, message, status, created_at
		FROM requests WHERE 1=1`

	args := []interface{}{}
	argIdx := 1

	if filters.SourceID != nil {
		query += fmt.Sprintf(" AND source_id = $%d", argIdx)
		args = append(args, *filters.SourceID)
		argIdx++
	}
	if filters.OperatorID != nil {
		query += fmt.Sprintf(" AND operator_id = $%d", argIdx)
		args = append(args, *filters.OperatorID)
		argIdx++
	}
	if filters.Status != nil {
		query += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(*filters.Status))
		argIdx++
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing requests: %w", err)
	}
	defer rows.Close()

	var requests []domainrequest.Request
	for rows.Next() {
		var req domainrequest.Request
		if err := rows.Scan(
			&req.ID, &req.UserID, &req.SourceID, &req.OperatorID,
			&req.Message, &req.Status, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning request row: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// MarkWaiting records the no-capacity outcome. The guard on operator_id keeps
// the write one-shot: a request that won an assignment race elsewhere is
// never demoted back to waiting.
func (r *Repository) MarkWaiting(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE requests SET status = 'waiting' WHERE id = $1 AND operator_id IS NULL`, id)
	if err != nil {
		return fmt.Errorf("marking request waiting: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found or already assigned", id)
	}
	return nil
}

func (r *Repository) MarkCompleted(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE requests SET status = 'completed' WHERE id = $1 AND status = 'assigned'`, id)
	if err != nil {
		return fmt.Errorf("marking request completed: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found or not assigned", id)
	}
	return nil
}
