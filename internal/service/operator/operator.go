package operator

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lanthe421/request-mesh/internal/domain/event"
	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	portbus "github.com/lanthe421/request-mesh/internal/port/eventbus"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
)

// Service manages operator records: creation, capacity updates, activation.
// Load mutation is not here — only the distribution engine and the release
// path touch current_load, through the directory primitives.
type Service struct {
	repo portoperator.Repository
	bus  portbus.EventBus
}

func NewService(repo portoperator.Repository, bus portbus.EventBus) *Service {
	return &Service{repo: repo, bus: bus}
}

func (s *Service) Create(ctx context.Context, name string, maxLoad int) (domainoperator.Operator, error) {
	if strings.TrimSpace(name) == "" {
		return domainoperator.Operator{}, fmt.Errorf("operator name must not be empty")
	}
	if maxLoad < 0 {
		return domainoperator.Operator{}, fmt.Errorf("max load must not be negative")
	}

	created, err := s.repo.Create(ctx, domainoperator.New(name, maxLoad))
	if err != nil {
		return domainoperator.Operator{}, fmt.Errorf("create operator: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeOperatorCreated, created.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish OperatorCreated event", "operator_id", created.ID, "error", err)
	}
	return created, nil
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainoperator.Operator, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainoperator.Operator{}, fmt.Errorf("get operator: %w", err)
	}
	return o, nil
}

func (s *Service) List(ctx context.Context) ([]domainoperator.Operator, error) {
	operators, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list operators: %w", err)
	}
	return operators, nil
}

// UpdateMaxLoad changes an operator's capacity ceiling. Lowering it below the
// current load is allowed: the operator simply stops being eligible until
// enough requests complete.
func (s *Service) UpdateMaxLoad(ctx context.Context, id uuid.UUID, maxLoad int) (domainoperator.Operator, error) {
	if maxLoad < 0 {
		return domainoperator.Operator{}, fmt.Errorf("max load must not be negative")
	}
	if err := s.repo.UpdateMaxLoad(ctx, id, maxLoad); err != nil {
		return domainoperator.Operator{}, fmt.Errorf("update operator max load: %w", err)
	}
	s.publishUpdated(ctx, id)
	return s.GetByID(ctx, id)
}

// ToggleActive flips the active flag. A deactivated operator receives no new
// assignments but keeps its current ones.
func (s *Service) ToggleActive(ctx context.Context, id uuid.UUID) (domainoperator.Operator, error) {
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainoperator.Operator{}, fmt.Errorf("get operator: %w", err)
	}
	if err := s.repo.SetActive(ctx, id, !o.Active); err != nil {
		return domainoperator.Operator{}, fmt.Errorf("toggle operator active: %w", err)
	}
	s.publishUpdated(ctx, id)
	o.Active = !o.Active
	return o, nil
}

func (s *Service) publishUpdated(ctx context.Context, id uuid.UUID) {
	if err := s.bus.Publish(ctx, event.New(event.TypeOperatorUpdated, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish OperatorUpdated event", "operator_id", id, "error", err)
	}
}
