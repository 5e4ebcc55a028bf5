package source_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
	"github.com/lanthe421/request-mesh/internal/mocks"
	"github.com/lanthe421/request-mesh/internal/service/source"
)

func newService(t *testing.T) (*source.Service, *mocks.MockSourceRepository, *mocks.MockOperatorRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSourceRepository(ctrl)
	operators := mocks.NewMockOperatorRepository(ctrl)
	return source.NewService(repo, operators), repo, operators
}

func TestCreate(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().GetByIdentifier(gomock.Any(), "web-widget").Return(domainsource.Source{}, errors.New("not found"))
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, src domainsource.Source) (domainsource.Source, error) {
			assert.Equal(t, "Web Widget", src.Name)
			assert.Equal(t, "web-widget", src.Identifier)
			return src, nil
		})

	created, err := svc.Create(context.Background(), "Web Widget", "web-widget")
	require.NoError(t, err)
	assert.Equal(t, "web-widget", created.Identifier)
}

func TestCreate_Validation(t *testing.T) {
	svc, _, _ := newService(t)

	_, err := svc.Create(context.Background(), "", "web")
	assert.Error(t, err)

	_, err = svc.Create(context.Background(), "Web", " ")
	assert.Error(t, err)
}

func TestCreate_DuplicateIdentifier(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().GetByIdentifier(gomock.Any(), "web").Return(domainsource.New("Web", "web"), nil)

	_, err := svc.Create(context.Background(), "Web Again", "web")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestConfigureWeights(t *testing.T) {
	svc, repo, operators := newService(t)
	sourceID := uuid.New()
	opA := uuid.New()
	opB := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), sourceID).Return(domainsource.Source{ID: sourceID}, nil)
	operators.EXPECT().GetByID(gomock.Any(), opA).Return(domainoperator.Operator{ID: opA}, nil)
	operators.EXPECT().GetByID(gomock.Any(), opB).Return(domainoperator.Operator{ID: opB}, nil)
	operators.EXPECT().UpsertWeight(gomock.Any(), domainoperator.Weight{OperatorID: opA, SourceID: sourceID, Weight: 30}).Return(nil)
	operators.EXPECT().UpsertWeight(gomock.Any(), domainoperator.Weight{OperatorID: opB, SourceID: sourceID, Weight: 70}).Return(nil)
	operators.EXPECT().ListWeights(gomock.Any(), sourceID).Return([]domainoperator.Weight{
		{OperatorID: opA, SourceID: sourceID, Weight: 30},
		{OperatorID: opB, SourceID: sourceID, Weight: 70},
	}, nil)

	weights, err := svc.ConfigureWeights(context.Background(), sourceID, []source.WeightConfig{
		{OperatorID: opA, Weight: 30},
		{OperatorID: opB, Weight: 70},
	})
	require.NoError(t, err)
	assert.Len(t, weights, 2)
}

func TestConfigureWeights_RejectsOutOfRange(t *testing.T) {
	svc, repo, _ := newService(t)
	sourceID := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), sourceID).Return(domainsource.Source{ID: sourceID}, nil).Times(2)

	_, err := svc.ConfigureWeights(context.Background(), sourceID, []source.WeightConfig{
		{OperatorID: uuid.New(), Weight: 0},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")

	_, err = svc.ConfigureWeights(context.Background(), sourceID, []source.WeightConfig{
		{OperatorID: uuid.New(), Weight: 101},
	})
	assert.Error(t, err)
}

// Validation runs before any write: an unknown operator in the batch means no
// weight is upserted at all.
func TestConfigureWeights_UnknownOperatorWritesNothing(t *testing.T) {
	svc, repo, operators := newService(t)
	sourceID := uuid.New()
	opA := uuid.New()
	missing := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), sourceID).Return(domainsource.Source{ID: sourceID}, nil)
	operators.EXPECT().GetByID(gomock.Any(), opA).Return(domainoperator.Operator{ID: opA}, nil)
	operators.EXPECT().GetByID(gomock.Any(), missing).Return(domainoperator.Operator{}, errors.New("not found"))

	_, err := svc.ConfigureWeights(context.Background(), sourceID, []source.WeightConfig{
		{OperatorID: opA, Weight: 50},
		{OperatorID: missing, Weight: 50},
	})
	assert.Error(t, err)
}

func TestConfigureWeights_SourceMissing(t *testing.T) {
	svc, repo, _ := newService(t)

	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domainsource.Source{}, errors.New("not found"))

	_, err := svc.ConfigureWeights(context.Background(), uuid.New(), nil)
	assert.Error(t, err)
}
