package operator

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
)

// Repository implements both port/operator.Repository and
// port/operator.Directory. [LSP] Consumers depend only on the interface they
// need; the engine sees the Directory slice.
type Repository struct {
	pool *pgxpool.Pool
}

var (
	_ portoperator.Repository = (*Repository)(nil)
	_ portoperator.Directory  = (*Repository)(nil)
)

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) Create(ctx context.Context, o domainoperator.Operator) (domainoperator.Operator, error) {
	query := `
		INSERT INTO operators (id, name, is_active, max_load_limit, current_load, created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, name, is_active, max_load_limit, current_load, created_at`

	var created domainoperator.Operator
	err := r.pool.QueryRow(ctx, query,
		o.ID, o.Name, o.Active, o.MaxLoad, o.CurrentLoad, o.CreatedAt,
	).Scan(
		&created.ID, &created.Name, &created.Active,
		&created.MaxLoad, &created.CurrentLoad, &created.CreatedAt,
	)
	if err != nil {
		return domainoperator.Operator{}, fmt.Errorf("inserting operator: %w", err)
	}
	return created, nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (domainoperator.Operator, error) {
	query := `
		SELECT id, name, is_active, max_load_limit, current_load, created_at
		FROM operators WHERE id = $1`

	var o domainoperator.Operator
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.Name, &o.Active, &o.MaxLoad, &o.CurrentLoad, &o.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domainoperator.Operator{}, fmt.Errorf("operator %s not found", id)
		}
		return domainoperator.Operator{}, fmt.Errorf("querying operator: %w", err)
	}
	return o, nil
}

func (r *Repository) List(ctx context.Context) ([]domainoperator.Operator, error) {
	query := `
		SELECT id, name, is_active, max_load_limit, current_load, created_at
		FROM operators ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing operators: %w", err)
	}
	defer rows.Close()

	var operators []domainoperator.Operator
	for rows.Next() {
		var o domainoperator.Operator
		if err := rows.Scan(&o.ID, &o.Name, &o.Active, &o.MaxLoad, &o.CurrentLoad, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning operator row: %w", err)
		}
		operators = append(operators, o)
	}
	return operators, rows.Err()
}

func (r *Repository) UpdateMaxLoad(ctx context.Context, id uuid.UUID, maxLoad int) error {
	tag, err := r.pool.Exec(ctx, `UPDATE operators SET max_load_limit = $1 WHERE id = $2`, maxLoad, id)
	if err != nil {
		return fmt.Errorf("updating operator max load: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("operator %s not found", id)
	}
	return nil
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	tag, err := r.pool.Exec(ctx, `UPDATE operators SET is_active = $1 WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("updating operator active flag: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("operator %s not found", id)
	}
	return nil
}

func (r *Repository) UpsertWeight(ctx context.Context, w domainoperator.Weight) error {
	query := `
		INSERT INTO operator_source_weights (operator_id, source_id, weight, created_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (operator_id, source_id) DO UPDATE SET weight = EXCLUDED.weight`

	if _, err := r.pool.Exec(ctx, query, w.OperatorID, w.SourceID, w.Weight); err != nil {
		return fmt.Errorf("upserting weight: %w", err)
	}
	return nil
}

func (r *Repository) ListWeights(ctx context.Context, sourceID uuid.UUID) ([]domainoperator.Weight, error) {
	query := `
		SELECT operator_id, source_id, weight, created_at
		FROM operator_source_weights WHERE source_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("listing weights: %w", err)
	}
	defer rows.Close()

	var weights []domainoperator.Weight
	for rows.Next() {
		var w domainoperator.Weight
		if err := rows.Scan(&w.OperatorID, &w.SourceID, &w.Weight, &w.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning weight row: %w", err)
		}
		weights = append(weights, w)
	}
	return weights, rows.Err()
}

// ListEligible joins active, under-capacity operators with their configured
// weight for the source. Snapshot read — no lock survives the return, the
// conditional increment re-validates at commit time.
func (r *Repository) ListEligible(ctx context.Context, sourceID uuid.UUID) ([]domainoperator.Candidate, error) {
	query := `
		SELECT o.id, w.weight, o.current_load, o.max_load_limit
		FROM operators o
		JOIN operator_source_weights w ON w.operator_id = o.id
		WHERE w.source_id = $1
		  AND o.is_active
		  AND o.current_load < o.max_load_limit
		ORDER BY o.created_at ASC`

	rows, err := r.pool.Query(ctx, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("listing eligible operators: %w", err)
	}
	defer rows.Close()

	var candidates []domainoperator.Candidate
	for rows.Next() {
		var c domainoperator.Candidate
		if err := rows.Scan(&c.ID, &c.Weight, &c.CurrentLoad, &c.MaxLoad); err != nil {
			return nil, fmt.Errorf("scanning eligible operator row: %w", err)
		}
		candidates = append(candidates, c)
	}
	return candidates, rows.Err()
}

// incrementSQL is the sole enforcement point of current_load <= max_load_limit.
// The WHERE clause makes read-check-write one indivisible statement: under
// Postgres row locking two racing increments serialize, and the loser matches
// zero rows once the last slot is gone.
const incrementSQL = `
	UPDATE operators SET current_load = current_load + 1
	WHERE id = $1 AND is_active AND current_load < max_load_limit`

// CommitAssignment increments the operator's load and binds the request in a
// single transaction. Either both writes land or neither does — a request is
// never left half-committed.
func (r *Repository) CommitAssignment(ctx context.Context, operatorID, requestID uuid.UUID) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning assignment transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, incrementSQL, operatorID)
	if err != nil {
		return fmt.Errorf("incrementing operator load: %w", err)
	}
	if tag.RowsAffected() == 0 {
		// Full, deactivated or gone since the eligibility snapshot —
		// the caller retries with this operator excluded.
		return portoperator.ErrCapacityExhausted
	}

	tag, err = tx.Exec(ctx,
		`UPDATE requests SET operator_id = $1, status = 'assigned' WHERE id = $2 AND operator_id IS NULL`,
		operatorID, requestID)
	if err != nil {
		return fmt.Errorf("binding request to operator: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("request %s not found or already routed", requestID)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing assignment: %w", err)
	}
	return nil
}

func (r *Repository) TryIncrementLoad(ctx context.Context, operatorID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, incrementSQL, operatorID)
	if err != nil {
		return fmt.Errorf("incrementing operator load: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return portoperator.ErrCapacityExhausted
	}
	return nil
}

func (r *Repository) DecrementLoad(ctx context.Context, operatorID uuid.UUID) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE operators SET current_load = current_load - 1 WHERE id = $1 AND current_load > 0`,
		operatorID)
	if err != nil {
		return fmt.Errorf("decrementing operator load: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("operator %s not found or load already zero", operatorID)
	}
	return nil
}
