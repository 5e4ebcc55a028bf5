package stats

import (
	"context"

	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
)

// Reader runs the grouped distribution queries. Reads take no locks and may
// observe a slightly stale snapshot relative to in-flight assignments —
// acceptable, the numbers are advisory.
type Reader interface {
	// CountByOperator groups stored requests by assigned operator; the row
	// with a nil operator id is the unassigned bucket.
	CountByOperator(ctx context.Context) ([]domainstats.OperatorCount, error)

	// CountBySource groups stored requests by source.
	CountBySource(ctx context.Context) ([]domainstats.SourceCount, error)

	// Totals returns the total and unassigned request counts.
	Totals(ctx context.Context) (total, unassigned int, err error)
}
