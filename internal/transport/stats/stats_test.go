package stats_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	"github.com/lanthe421/request-mesh/internal/mocks"
	statssvc "github.com/lanthe421/request-mesh/internal/service/stats"
	statshandler "github.com/lanthe421/request-mesh/internal/transport/stats"
)

func setup(t *testing.T) (*gin.Engine, *mocks.MockOperatorRepository, *mocks.MockStatsReader) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	operators := mocks.NewMockOperatorRepository(ctrl)
	reader := mocks.NewMockStatsReader(ctrl)

	r := gin.New()
	statshandler.Register(r.Group("/api/stats"), statssvc.NewService(operators, reader))
	return r, operators, reader
}

func TestOperatorsLoad(t *testing.T) {
	r, operators, _ := setup(t)

	op := domainoperator.New("alice", 4)
	op.CurrentLoad = 1
	operators.EXPECT().List(gomock.Any()).Return([]domainoperator.Operator{op}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/operators-load", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got []domainstats.OperatorLoad
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, op.ID, got[0].OperatorID)
	assert.InDelta(t, 25.0, got[0].LoadPct, 0.001)
}

func TestOperatorsLoad_EmptyIsArray(t *testing.T) {
	r, operators, _ := setup(t)

	operators.EXPECT().List(gomock.Any()).Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/operators-load", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestRequestsDistribution(t *testing.T) {
	r, _, reader := setup(t)

	operatorID := uuid.New()
	name := "alice"
	reader.EXPECT().CountByOperator(gomock.Any()).Return([]domainstats.OperatorCount{
		{OperatorID: &operatorID, Name: &name, Count: 3},
	}, nil)
	reader.EXPECT().CountBySource(gomock.Any()).Return([]domainstats.SourceCount{
		{SourceID: uuid.New(), Name: "web", Count: 3},
	}, nil)
	reader.EXPECT().Totals(gomock.Any()).Return(3, 0, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/requests-distribution", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var got domainstats.Distribution
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 3, got.Total)
	assert.Equal(t, 0, got.Unassigned)
	require.Len(t, got.ByOperator, 1)
	assert.Equal(t, 3, got.ByOperator[0].Count)
}

func TestRequestsDistribution_Error(t *testing.T) {
	r, _, reader := setup(t)

	reader.EXPECT().CountByOperator(gomock.Any()).Return(nil, errors.New("query failed"))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/stats/requests-distribution", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
