package stats_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	"github.com/lanthe421/request-mesh/internal/mocks"
	"github.com/lanthe421/request-mesh/internal/service/stats"
)

func newService(t *testing.T) (*stats.Service, *mocks.MockOperatorRepository, *mocks.MockStatsReader) {
	t.Helper()
	ctrl := gomock.NewController(t)
	operators := mocks.NewMockOperatorRepository(ctrl)
	reader := mocks.NewMockStatsReader(ctrl)
	return stats.NewService(operators, reader), operators, reader
}

func TestLoadStats(t *testing.T) {
	svc, operators, _ := newService(t)

	busy := domainoperator.New("busy", 4)
	busy.CurrentLoad = 3
	idle := domainoperator.New("idle", 10)
	zeroCap := domainoperator.New("zero", 0)
	zeroCap.Active = false

	operators.EXPECT().List(gomock.Any()).Return([]domainoperator.Operator{busy, idle, zeroCap}, nil)

	loads, err := svc.LoadStats(context.Background())
	require.NoError(t, err)
	require.Len(t, loads, 3)

	assert.Equal(t, busy.ID, loads[0].OperatorID)
	assert.InDelta(t, 75.0, loads[0].LoadPct, 0.001)
	assert.InDelta(t, 0.0, loads[1].LoadPct, 0.001)

	// Max load 0 reports 0%, not a division error.
	assert.Equal(t, 0, loads[2].MaxLoad)
	assert.InDelta(t, 0.0, loads[2].LoadPct, 0.001)
	assert.False(t, loads[2].Active)
}

func TestLoadStats_Error(t *testing.T) {
	svc, operators, _ := newService(t)

	boom := errors.New("db down")
	operators.EXPECT().List(gomock.Any()).Return(nil, boom)

	_, err := svc.LoadStats(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestDistributionStats(t *testing.T) {
	svc, _, reader := newService(t)

	operatorID := uuid.New()
	name := "alice"
	sourceID := uuid.New()

	reader.EXPECT().CountByOperator(gomock.Any()).Return([]domainstats.OperatorCount{
		{OperatorID: &operatorID, Name: &name, Count: 7},
		{OperatorID: nil, Name: nil, Count: 2},
	}, nil)
	reader.EXPECT().CountBySource(gomock.Any()).Return([]domainstats.SourceCount{
		{SourceID: sourceID, Name: "web", Count: 9},
	}, nil)
	reader.EXPECT().Totals(gomock.Any()).Return(9, 2, nil)

	dist, err := svc.DistributionStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 9, dist.Total)
	assert.Equal(t, 2, dist.Unassigned)
	require.Len(t, dist.ByOperator, 2)
	assert.Nil(t, dist.ByOperator[1].OperatorID)
	require.Len(t, dist.BySource, 1)
	assert.Equal(t, sourceID, dist.BySource[0].SourceID)
}

func TestDistributionStats_ReaderError(t *testing.T) {
	svc, _, reader := newService(t)

	boom := errors.New("query failed")
	reader.EXPECT().CountByOperator(gomock.Any()).Return(nil, boom)

	_, err := svc.DistributionStats(context.Background())
	assert.ErrorIs(t, err, boom)
}
