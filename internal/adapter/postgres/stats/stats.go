package stats

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	portstats "github.com/lanthe421/request-mesh/internal/port/stats"
)

// Reader runs the grouped distribution queries. Plain reads, no transaction:
// the report is advisory and a slightly stale snapshot is fine.
type Reader struct {
	pool *pgxpool.Pool
}

var _ portstats.Reader = (*Reader)(nil)

func New(pool *pgxpool.Pool) *Reader {
	return &Reader{pool: pool}
}

// CountByOperator groups requests by assigned operator. The LEFT JOIN keeps
// the unassigned rows: they surface as one row with a NULL operator id.
func (r *Reader) CountByOperator(ctx context.Context) ([]domainstats.OperatorCount, error) {
	query := `
		SELECT req.operator_id, o.name, COUNT(req.id)
		FROM requests req
		LEFT JOIN operators o ON o.id = req.operator_id
		GROUP BY req.operator_id, o.name
		ORDER BY COUNT(req.id) DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting requests by operator: %w", err)
	}
	defer rows.Close()

	var counts []domainstats.OperatorCount
	for rows.Next() {
		var c domainstats.OperatorCount
		if err := rows.Scan(&c.OperatorID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning operator count row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *Reader) CountBySource(ctx context.Context) ([]domainstats.SourceCount, error) {
	query := `
		SELECT req.source_id, s.name, COUNT(req.id)
		FROM requests req
		JOIN sources s ON s.id = req.source_id
		GROUP BY req.source_id, s.name
		ORDER BY COUNT(req.id) DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("counting requests by source: %w", err)
	}
	defer rows.Close()

	var counts []domainstats.SourceCount
	for rows.Next() {
		var c domainstats.SourceCount
		if err := rows.Scan(&c.SourceID, &c.Name, &c.Count); err != nil {
			return nil, fmt.Errorf("scanning source count row: %w", err)
		}
		counts = append(counts, c)
	}
	return counts, rows.Err()
}

func (r *Reader) Totals(ctx context.Context) (int, int, error) {
	var total, unassigned int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE operator_id IS NULL) FROM requests`,
	).Scan(&total, &unassigned)
	if err != nil {
		return 0, 0, fmt.Errorf("counting request totals: %w", err)
	}
	return total, unassigned, nil
}
