package distributor_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lanthe421/request-mesh/internal/domain/event"
	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	"github.com/lanthe421/request-mesh/internal/mocks"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	"github.com/lanthe421/request-mesh/internal/service/distributor"
)

type engineDeps struct {
	dir      *mocks.MockOperatorDirectory
	requests *mocks.MockRequestStatusWriter
	bus      *mocks.MockEventBus
}

func newEngine(t *testing.T, intn func(n int) int, maxAttempts int) (*distributor.Service, engineDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := engineDeps{
		dir:      mocks.NewMockOperatorDirectory(ctrl),
		requests: mocks.NewMockRequestStatusWriter(ctrl),
		bus:      mocks.NewMockEventBus(ctrl),
	}
	return distributor.NewService(deps.dir, deps.requests, deps.bus, intn, maxAttempts), deps
}

func TestAssign_Success(t *testing.T) {
	sourceID := uuid.New()
	requestID := uuid.New()
	opA := uuid.New()
	opB := uuid.New()

	// Draw 70 lands in opB's range [20, 100).
	svc, deps := newEngine(t, func(int) int { return 70 }, 0)

	deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return([]domainoperator.Candidate{
		{ID: opA, Weight: 20},
		{ID: opB, Weight: 80},
	}, nil)
	deps.dir.EXPECT().CommitAssignment(gomock.Any(), opB, requestID).Return(nil)
	deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev event.Event) error {
		assert.Equal(t, event.TypeRequestAssigned, ev.Type)
		assert.Equal(t, requestID, ev.EntityID)
		return nil
	})

	result, err := svc.Assign(context.Background(), sourceID, requestID)
	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, opB, result.OperatorID)
}

func TestAssign_NoEligibleOperators_MarksWaiting(t *testing.T) {
	sourceID := uuid.New()
	requestID := uuid.New()

	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return(nil, nil)
	deps.requests.EXPECT().MarkWaiting(gomock.Any(), requestID).Return(nil)
	deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev event.Event) error {
		assert.Equal(t, event.TypeRequestWaiting, ev.Type)
		return nil
	})

	result, err := svc.Assign(context.Background(), sourceID, requestID)
	require.NoError(t, err)
	assert.False(t, result.Assigned)
}

func TestAssign_ZeroWeightPool_MarksWaiting(t *testing.T) {
	sourceID := uuid.New()
	requestID := uuid.New()

	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return([]domainoperator.Candidate{
		{ID: uuid.New(), Weight: 0},
	}, nil)
	deps.requests.EXPECT().MarkWaiting(gomock.Any(), requestID).Return(nil)
	deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Assign(context.Background(), sourceID, requestID)
	require.NoError(t, err)
	assert.False(t, result.Assigned)
}

// Losing the race for an operator's last slot excludes it and retries the
// remaining pool.
func TestAssign_RetriesWithLoserExcluded(t *testing.T) {
	sourceID := uuid.New()
	requestID := uuid.New()
	contested := uuid.New()
	fallback := uuid.New()

	// First draw 0 selects the contested operator; after exclusion the pool
	// shrinks to the fallback alone, so draw 0 selects it.
	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	candidates := []domainoperator.Candidate{
		{ID: contested, Weight: 50},
		{ID: fallback, Weight: 50},
	}
	deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return(candidates, nil).Times(2)
	gomock.InOrder(
		deps.dir.EXPECT().CommitAssignment(gomock.Any(), contested, requestID).Return(portoperator.ErrCapacityExhausted),
		deps.dir.EXPECT().CommitAssignment(gomock.Any(), fallback, requestID).Return(nil),
	)
	deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	result, err := svc.Assign(context.Background(), sourceID, requestID)
	require.NoError(t, err)
	assert.True(t, result.Assigned)
	assert.Equal(t, fallback, result.OperatorID)
}

func TestAssign_AttemptBudgetExhausted_MarksWaiting(t *testing.T) {
	sourceID := uuid.New()
	requestID := uuid.New()
	sole := uuid.New()

	svc, deps := newEngine(t, func(int) int { return 0 }, 2)

	deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return([]domainoperator.Candidate{
		{ID: sole, Weight: 10},
	}, nil).Times(2)
	// The first loss excludes the sole operator, leaving the second
	// attempt's pool empty, so only one commit is ever tried.
	deps.dir.EXPECT().CommitAssignment(gomock.Any(), sole, requestID).Return(portoperator.ErrCapacityExhausted)
	deps.requests.EXPECT().MarkWaiting(gomock.Any(), requestID).Return(nil)
	deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ev event.Event) error {
		assert.Equal(t, event.TypeRequestWaiting, ev.Type)
		return nil
	})

	result, err := svc.Assign(context.Background(), sourceID, requestID)
	require.NoError(t, err)
	assert.False(t, result.Assigned)
}

func TestAssign_ListEligibleError(t *testing.T) {
	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	boom := errors.New("connection reset")
	deps.dir.EXPECT().ListEligible(gomock.Any(), gomock.Any()).Return(nil, boom)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAssign_CommitStorageError(t *testing.T) {
	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	boom := errors.New("tx aborted")
	deps.dir.EXPECT().ListEligible(gomock.Any(), gomock.Any()).Return([]domainoperator.Candidate{
		{ID: uuid.New(), Weight: 1},
	}, nil)
	deps.dir.EXPECT().CommitAssignment(gomock.Any(), gomock.Any(), gomock.Any()).Return(boom)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestAssign_MarkWaitingError(t *testing.T) {
	svc, deps := newEngine(t, func(int) int { return 0 }, 0)

	boom := errors.New("request gone")
	deps.dir.EXPECT().ListEligible(gomock.Any(), gomock.Any()).Return(nil, nil)
	deps.requests.EXPECT().MarkWaiting(gomock.Any(), gomock.Any()).Return(boom)

	_, err := svc.Assign(context.Background(), uuid.New(), uuid.New())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

// Draw boundaries map onto cumulative ranges: weights [20, 30, 50] give
// ranges [0,20), [20,50), [50,100).
func TestAssign_DrawBoundaries(t *testing.T) {
	sourceID := uuid.New()
	opA := uuid.New()
	opB := uuid.New()
	opC := uuid.New()

	candidates := []domainoperator.Candidate{
		{ID: opA, Weight: 20},
		{ID: opB, Weight: 30},
		{ID: opC, Weight: 50},
	}

	tests := []struct {
		draw int
		want uuid.UUID
	}{
		{0, opA},
		{19, opA},
		{20, opB},
		{45, opB},
		{49, opB},
		{50, opC},
		{99, opC},
	}
	for _, tt := range tests {
		requestID := uuid.New()
		svc, deps := newEngine(t, func(int) int { return tt.draw }, 0)

		deps.dir.EXPECT().ListEligible(gomock.Any(), sourceID).Return(candidates, nil)
		deps.dir.EXPECT().CommitAssignment(gomock.Any(), tt.want, requestID).Return(nil)
		deps.bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

		result, err := svc.Assign(context.Background(), sourceID, requestID)
		require.NoError(t, err, "draw %d", tt.draw)
		assert.Equal(t, tt.want, result.OperatorID, "draw %d", tt.draw)
	}
}
