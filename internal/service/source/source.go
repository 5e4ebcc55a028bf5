package source

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	portsource "github.com/lanthe421/request-mesh/internal/port/source"
)

// WeightConfig is one entry of a bulk weight configuration call.
type WeightConfig struct {
	OperatorID uuid.UUID
	Weight     int
}

// Service manages sources and their per-operator weight configuration.
// Weight validation happens here, before anything reaches the engine — the
// engine assumes every configured weight is in [1,100].
type Service struct {
	repo      portsource.Repository
	operators portoperator.Repository
}

func NewService(repo portsource.Repository, operators portoperator.Repository) *Service {
	return &Service{repo: repo, operators: operators}
}

func (s *Service) Create(ctx context.Context, name, identifier string) (domainsource.Source, error) {
	if strings.TrimSpace(name) == "" {
		return domainsource.Source{}, fmt.Errorf("source name must not be empty")
	}
	if strings.TrimSpace(identifier) == "" {
		return domainsource.Source{}, fmt.Errorf("source identifier must not be empty")
	}
	if _, err := s.repo.GetByIdentifier(ctx, identifier); err == nil {
		return domainsource.Source{}, fmt.Errorf("source with identifier %q already exists", identifier)
	}

	created, err := s.repo.Create(ctx, domainsource.New(name, identifier))
	if err != nil {
		return domainsource.Source{}, fmt.Errorf("create source: %w", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainsource.Source, error) {
	src, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainsource.Source{}, fmt.Errorf("get source: %w", err)
	}
	return src, nil
}

func (s *Service) List(ctx context.Context) ([]domainsource.Source, error) {
	sources, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sources: %w", err)
	}
	return sources, nil
}

// ConfigureWeights upserts the weight for each (operator, source) pair and
// returns the full configuration for the source. Source and every operator
// must exist; each weight must be in [1,100].
func (s *Service) ConfigureWeights(ctx context.Context, sourceID uuid.UUID, configs []WeightConfig) ([]domainoperator.Weight, error) {
	if _, err := s.repo.GetByID(ctx, sourceID); err != nil {
		return nil, fmt.Errorf("get source: %w", err)
	}

	for _, cfg := range configs {
		if cfg.Weight < 1 || cfg.Weight > 100 {
			return nil, fmt.Errorf("weight %d for operator %s out of range [1,100]", cfg.Weight, cfg.OperatorID)
		}
		if _, err := s.operators.GetByID(ctx, cfg.OperatorID); err != nil {
			return nil, fmt.Errorf("get operator %s: %w", cfg.OperatorID, err)
		}
	}

	for _, cfg := range configs {
		w := domainoperator.Weight{OperatorID: cfg.OperatorID, SourceID: sourceID, Weight: cfg.Weight}
		if err := s.operators.UpsertWeight(ctx, w); err != nil {
			return nil, fmt.Errorf("upsert weight for operator %s: %w", cfg.OperatorID, err)
		}
	}

	weights, err := s.operators.ListWeights(ctx, sourceID)
	if err != nil {
		return nil, fmt.Errorf("list weights: %w", err)
	}
	return weights, nil
}
