//go:build integration

package stats_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pgoperator "github.com/lanthe421/request-mesh/internal/adapter/postgres/operator"
	pgrequest "github.com/lanthe421/request-mesh/internal/adapter/postgres/request"
	pgsource "github.com/lanthe421/request-mesh/internal/adapter/postgres/source"
	pgstats "github.com/lanthe421/request-mesh/internal/adapter/postgres/stats"
	pguser "github.com/lanthe421/request-mesh/internal/adapter/postgres/user"
	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	domainuser "github.com/lanthe421/request-mesh/internal/domain/user"
	"github.com/lanthe421/request-mesh/internal/testutil"
)

// The DB is shared across tests, so assertions pick out this test's rows
// instead of asserting exact global totals.
func TestReader(t *testing.T) {
	pool := testutil.SetupTestDB(t)
	ctx := context.Background()

	operators := pgoperator.New(pool)
	requests := pgrequest.New(pool)
	reader := pgstats.New(pool)

	src, err := pgsource.New(pool).Create(ctx, domainsource.New("stats-src", uuid.NewString()))
	require.NoError(t, err)
	u, err := pguser.New(pool).Create(ctx, domainuser.New(uuid.NewString()))
	require.NoError(t, err)
	op, err := operators.Create(ctx, domainoperator.New("op-"+uuid.NewString()[:8], 5))
	require.NoError(t, err)

	assigned, err := requests.Create(ctx, domainrequest.New(u.ID, src.ID, "assigned"))
	require.NoError(t, err)
	require.NoError(t, operators.CommitAssignment(ctx, op.ID, assigned.ID))

	waiting, err := requests.Create(ctx, domainrequest.New(u.ID, src.ID, "waiting"))
	require.NoError(t, err)
	require.NoError(t, requests.MarkWaiting(ctx, waiting.ID))

	byOperator, err := reader.CountByOperator(ctx)
	require.NoError(t, err)
	var opRow, nilRow *domainstats.OperatorCount
	for i := range byOperator {
		switch {
		case byOperator[i].OperatorID != nil && *byOperator[i].OperatorID == op.ID:
			opRow = &byOperator[i]
		case byOperator[i].OperatorID == nil:
			nilRow = &byOperator[i]
		}
	}
	require.NotNil(t, opRow, "assigned operator must appear in the report")
	assert.Equal(t, 1, opRow.Count)
	require.NotNil(t, opRow.Name)
	assert.Equal(t, op.Name, *opRow.Name)
	require.NotNil(t, nilRow, "unassigned bucket must appear")
	assert.GreaterOrEqual(t, nilRow.Count, 1)

	bySource, err := reader.CountBySource(ctx)
	require.NoError(t, err)
	var srcRow *domainstats.SourceCount
	for i := range bySource {
		if bySource[i].SourceID == src.ID {
			srcRow = &bySource[i]
		}
	}
	require.NotNil(t, srcRow)
	assert.Equal(t, 2, srcRow.Count)

	total, unassigned, err := reader.Totals(ctx)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, total, 2)
	assert.GreaterOrEqual(t, unassigned, 1)
	assert.LessOrEqual(t, unassigned, total)
}
