package stats

import (
	"context"
	"fmt"

	domainstats "github.com/lanthe421/request-mesh/internal/domain/stats"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	portstats "github.com/lanthe421/request-mesh/internal/port/stats"
)

// Service derives load and distribution reports from stored state. It never
// touches the assignment path and takes no locks; slightly stale numbers are
// acceptable.
type Service struct {
	operators portoperator.Repository
	reader    portstats.Reader
}

func NewService(operators portoperator.Repository, reader portstats.Reader) *Service {
	return &Service{operators: operators, reader: reader}
}

// LoadStats reports every operator, active or not. LoadPct is
// current*100/max; an operator with max load 0 reports 0% — it can never be
// eligible, so there is nothing meaningful to divide.
func (s *Service) LoadStats(ctx context.Context) ([]domainstats.OperatorLoad, error) {
	operators, err := s.operators.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}

	loads := make([]domainstats.OperatorLoad, 0, len(operators))
	for _, o := range operators {
		pct := 0.0
		if o.MaxLoad > 0 {
			pct = float64(o.CurrentLoad) * 100 / float64(o.MaxLoad)
		}
		loads = append(loads, domainstats.OperatorLoad{
			OperatorID:  o.ID,
			Name:        o.Name,
			Active:      o.Active,
			CurrentLoad: o.CurrentLoad,
			MaxLoad:     o.MaxLoad,
			LoadPct:     pct,
		})
	}
	return loads, nil
}

// DistributionStats groups stored requests by operator (nil bucket =
// unassigned) and by source, with total and unassigned counts.
func (s *Service) DistributionStats(ctx context.Context) (domainstats.Distribution, error) {
	byOperator, err := s.reader.CountByOperator(ctx)
	if err != nil {
		return domainstats.Distribution{}, fmt.Errorf("count requests by operator: %w", err)
	}
	bySource, err := s.reader.CountBySource(ctx)
	if err != nil {
		return domainstats.Distribution{}, fmt.Errorf("count requests by source: %w", err)
	}
	total, unassigned, err := s.reader.Totals(ctx)
	if err != nil {
		return domainstats.Distribution{}, fmt.Errorf("count request totals: %w", err)
	}

	return domainstats.Distribution{
		ByOperator: byOperator,
		BySource:   bySource,
		Total:      total,
		Unassigned: unassigned,
	}, nil
}
