package request

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/lanthe421/request-mesh/internal/domain/event"
	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	domainuser "github.com/lanthe421/request-mesh/internal/domain/user"
	"github.com/lanthe421/request-mesh/internal/metrics"
	portdist "github.com/lanthe421/request-mesh/internal/port/distributor"
	portbus "github.com/lanthe421/request-mesh/internal/port/eventbus"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	portrequest "github.com/lanthe421/request-mesh/internal/port/request"
	portsource "github.com/lanthe421/request-mesh/internal/port/source"
	portuser "github.com/lanthe421/request-mesh/internal/port/user"
)

// Service handles request intake and lifecycle. Creation validates the
// source, gets-or-creates the user by identifier, inserts the request as
// pending and routes it through the distributor synchronously — the caller
// sees the terminal assigned/waiting state in the response.
type Service struct {
	repo    portrequest.Repository
	users   portuser.Repository
	sources portsource.Repository
	dir     portoperator.Directory
	dist    portdist.Distributor
	bus     portbus.EventBus
}

func NewService(
	repo portrequest.Repository,
	users portuser.Repository,
	sources portsource.Repository,
	dir portoperator.Directory,
	dist portdist.Distributor,
	bus portbus.EventBus,
) *Service {
	return &Service{
		repo:    repo,
		users:   users,
		sources: sources,
		dir:     dir,
		dist:    dist,
		bus:     bus,
	}
}

func (s *Service) Create(ctx context.Context, userIdentifier string, sourceID uuid.UUID, message string) (domainrequest.Request, error) {
	if strings.TrimSpace(userIdentifier) == "" {
		return domainrequest.Request{}, fmt.Errorf("user identifier must not be empty")
	}
	if strings.TrimSpace(message) == "" {
		return domainrequest.Request{}, fmt.Errorf("message must not be empty")
	}
	if _, err := s.sources.GetByID(ctx, sourceID); err != nil {
		return domainrequest.Request{}, fmt.Errorf("get source: %w", err)
	}

	u, found, err := s.users.GetByIdentifier(ctx, userIdentifier)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("look up user: %w", err)
	}
	if !found {
		u, err = s.users.Create(ctx, domainuser.New(userIdentifier))
		if err != nil {
			return domainrequest.Request{}, fmt.Errorf("create user: %w", err)
		}
	}

	created, err := s.repo.Create(ctx, domainrequest.New(u.ID, sourceID, message))
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("create request: %w", err)
	}
	metrics.RequestsCreated.Inc()

	if err := s.bus.Publish(ctx, event.New(event.TypeRequestCreated, created.ID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish RequestCreated event", "request_id", created.ID, "error", err)
	}

	if _, err := s.dist.Assign(ctx, sourceID, created.ID); err != nil {
		return domainrequest.Request{}, fmt.Errorf("distribute request: %w", err)
	}

	// Re-read: the engine wrote operator_id/status after the insert.
	return s.GetByID(ctx, created.ID)
}

func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (domainrequest.Request, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("get request: %w", err)
	}
	return r, nil
}

func (s *Service) List(ctx context.Context, filters domainrequest.ListFilters) ([]domainrequest.Request, error) {
	requests, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	return requests, nil
}

// Complete releases an assigned request: status becomes completed and the
// operator's load is decremented. Completing a request that holds no operator
// is rejected — there is no slot to release.
func (s *Service) Complete(ctx context.Context, id uuid.UUID) (domainrequest.Request, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return domainrequest.Request{}, fmt.Errorf("get request: %w", err)
	}
	if r.Status != domainrequest.StatusAssigned || r.OperatorID == nil {
		return domainrequest.Request{}, fmt.Errorf("request %s is not assigned", id)
	}

	if err := s.repo.MarkCompleted(ctx, id); err != nil {
		return domainrequest.Request{}, fmt.Errorf("mark request completed: %w", err)
	}
	if err := s.dir.DecrementLoad(ctx, *r.OperatorID); err != nil {
		return domainrequest.Request{}, fmt.Errorf("decrement operator load: %w", err)
	}

	if err := s.bus.Publish(ctx, event.New(event.TypeRequestCompleted, id)); err != nil {
		slog.ErrorContext(ctx, "failed to publish RequestCompleted event", "request_id", id, "error", err)
	}

	r.Status = domainrequest.StatusCompleted
	return r, nil
}
