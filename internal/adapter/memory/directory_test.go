package memory_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lanthe421/request-mesh/internal/adapter/memory"
	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
)

func TestListEligible_FiltersInactiveAndFull(t *testing.T) {
	ctx := context.Background()
	sourceID := uuid.New()
	dir := memory.NewDirectory()

	active := domainoperator.New("active", 5)
	inactive := domainoperator.New("inactive", 5)
	inactive.Active = false
	full := domainoperator.New("full", 2)
	full.CurrentLoad = 2
	unweighted := domainoperator.New("unweighted", 5)

	for _, o := range []domainoperator.Operator{active, inactive, full, unweighted} {
		dir.AddOperator(o)
	}
	dir.SetWeight(active.ID, sourceID, 40)
	dir.SetWeight(inactive.ID, sourceID, 30)
	dir.SetWeight(full.ID, sourceID, 30)

	candidates, err := dir.ListEligible(ctx, sourceID)
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	assert.Equal(t, active.ID, candidates[0].ID)
	assert.Equal(t, 40, candidates[0].Weight)
}

func TestTryIncrementLoad_EnforcesLimit(t *testing.T) {
	ctx := context.Background()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 2)
	dir.AddOperator(op)

	require.NoError(t, dir.TryIncrementLoad(ctx, op.ID))
	require.NoError(t, dir.TryIncrementLoad(ctx, op.ID))
	assert.ErrorIs(t, dir.TryIncrementLoad(ctx, op.ID), portoperator.ErrCapacityExhausted)

	got, _ := dir.Operator(op.ID)
	assert.Equal(t, 2, got.CurrentLoad)
}

func TestTryIncrementLoad_RejectsInactive(t *testing.T) {
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 5)
	op.Active = false
	dir.AddOperator(op)

	assert.ErrorIs(t, dir.TryIncrementLoad(context.Background(), op.ID), portoperator.ErrCapacityExhausted)
}

func TestCommitAssignment_BindsRequestAndLoadTogether(t *testing.T) {
	ctx := context.Background()
	sourceID := uuid.New()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 1)
	dir.AddOperator(op)
	req := domainrequest.New(uuid.New(), sourceID, "hi")
	dir.AddRequest(req)

	require.NoError(t, dir.CommitAssignment(ctx, op.ID, req.ID))

	got, ok := dir.Request(req.ID)
	require.True(t, ok)
	require.NotNil(t, got.OperatorID)
	assert.Equal(t, op.ID, *got.OperatorID)
	assert.Equal(t, domainrequest.StatusAssigned, got.Status)

	gotOp, _ := dir.Operator(op.ID)
	assert.Equal(t, 1, gotOp.CurrentLoad)
}

func TestCommitAssignment_FullOperatorLeavesRequestUntouched(t *testing.T) {
	ctx := context.Background()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 1)
	op.CurrentLoad = 1
	dir.AddOperator(op)
	req := domainrequest.New(uuid.New(), uuid.New(), "hi")
	dir.AddRequest(req)

	assert.ErrorIs(t, dir.CommitAssignment(ctx, op.ID, req.ID), portoperator.ErrCapacityExhausted)

	got, _ := dir.Request(req.ID)
	assert.Nil(t, got.OperatorID)
	assert.Equal(t, domainrequest.StatusPending, got.Status)
}

func TestCommitAssignment_RejectsDoubleRouting(t *testing.T) {
	ctx := context.Background()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 5)
	dir.AddOperator(op)
	req := domainrequest.New(uuid.New(), uuid.New(), "hi")
	dir.AddRequest(req)

	require.NoError(t, dir.CommitAssignment(ctx, op.ID, req.ID))
	assert.Error(t, dir.CommitAssignment(ctx, op.ID, req.ID))

	gotOp, _ := dir.Operator(op.ID)
	assert.Equal(t, 1, gotOp.CurrentLoad)
}

func TestDecrementLoad(t *testing.T) {
	ctx := context.Background()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 5)
	op.CurrentLoad = 1
	dir.AddOperator(op)

	require.NoError(t, dir.DecrementLoad(ctx, op.ID))
	got, _ := dir.Operator(op.ID)
	assert.Equal(t, 0, got.CurrentLoad)

	assert.Error(t, dir.DecrementLoad(ctx, op.ID))
}

func TestMarkWaiting_RefusesAssignedRequest(t *testing.T) {
	ctx := context.Background()
	dir := memory.NewDirectory()

	op := domainoperator.New("op", 5)
	dir.AddOperator(op)
	req := domainrequest.New(uuid.New(), uuid.New(), "hi")
	dir.AddRequest(req)

	require.NoError(t, dir.CommitAssignment(ctx, op.ID, req.ID))
	assert.Error(t, dir.MarkWaiting(ctx, req.ID))

	got, _ := dir.Request(req.ID)
	assert.Equal(t, domainrequest.StatusAssigned, got.Status)
}
