package distributor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lanthe421/request-mesh/internal/domain/event"
	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	"github.com/lanthe421/request-mesh/internal/domain/selection"
	"github.com/lanthe421/request-mesh/internal/metrics"
	portdist "github.com/lanthe421/request-mesh/internal/port/distributor"
	portbus "github.com/lanthe421/request-mesh/internal/port/eventbus"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	portrequest "github.com/lanthe421/request-mesh/internal/port/request"
)

// DefaultMaxAttempts bounds the filter→select→commit loop. Each retry
// excludes the operator that just rejected the commit, so the loop cannot
// livelock under sustained contention.
const DefaultMaxAttempts = 3

var _ portdist.Distributor = (*Service)(nil)

// Service is the distribution engine: it filters eligible operators for a
// source, selects one by weighted random draw, and commits the assignment
// through the directory's atomic increment.
// [SRP] Only routes — entity CRUD and request creation live elsewhere.
// [ISP] Depends on the Directory slice of the operator port and the
// StatusWriter slice of the request port.
type Service struct {
	dir         portoperator.Directory
	requests    portrequest.StatusWriter
	bus         portbus.EventBus
	maxAttempts int

	// intn supplies the random draw; injected so tests can verify exact
	// selection outcomes.
	mu   sync.Mutex
	intn func(n int) int
}

// NewService builds the engine. intn may be nil (a time-seeded source is
// used); maxAttempts <= 0 falls back to DefaultMaxAttempts.
func NewService(dir portoperator.Directory, requests portrequest.StatusWriter, bus portbus.EventBus, intn func(n int) int, maxAttempts int) *Service {
	if intn == nil {
		intn = rand.New(rand.NewSource(time.Now().UnixNano())).Intn
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Service{
		dir:         dir,
		requests:    requests,
		bus:         bus,
		maxAttempts: maxAttempts,
		intn:        intn,
	}
}

// Assign routes one request. Every call reaches exactly one terminal state:
// assigned to a concrete, capacity-respecting operator, or unassigned with
// the request marked waiting. A stale eligibility snapshot is fine — the
// commit re-checks capacity and the loop retries with the loser excluded.
func (s *Service) Assign(ctx context.Context, sourceID, requestID uuid.UUID) (portdist.Result, error) {
	excluded := make(map[uuid.UUID]struct{})

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		candidates, err := s.dir.ListEligible(ctx, sourceID)
		if err != nil {
			return portdist.Result{}, fmt.Errorf("list eligible operators: %w", err)
		}

		pool := filter(candidates, excluded)
		if len(pool) == 0 {
			break
		}

		selectedID, ok := selection.Pick(pool, s.draw(selection.Total(pool)))
		if !ok {
			break
		}

		err = s.dir.CommitAssignment(ctx, selectedID, requestID)
		if errors.Is(err, portoperator.ErrCapacityExhausted) {
			// Lost the race for the last slot — re-filter without the loser.
			metrics.AssignmentRetries.Inc()
			excluded[selectedID] = struct{}{}
			continue
		}
		if err != nil {
			return portdist.Result{}, fmt.Errorf("commit assignment: %w", err)
		}

		metrics.AssignmentsTotal.WithLabelValues("assigned").Inc()
		s.publish(ctx, event.TypeRequestAssigned, requestID)
		return portdist.Result{Assigned: true, OperatorID: selectedID}, nil
	}

	if err := s.requests.MarkWaiting(ctx, requestID); err != nil {
		return portdist.Result{}, fmt.Errorf("mark request waiting: %w", err)
	}
	metrics.AssignmentsTotal.WithLabelValues("unassigned").Inc()
	s.publish(ctx, event.TypeRequestWaiting, requestID)
	return portdist.Result{}, nil
}

func (s *Service) draw(total int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.intn(total)
}

func (s *Service) publish(ctx context.Context, t event.Type, requestID uuid.UUID) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, event.New(t, requestID)); err != nil {
		slog.ErrorContext(ctx, "failed to publish distribution event", "type", t, "request_id", requestID, "error", err)
	}
}

// filter drops excluded operators and non-positive weights. Zero-weight
// entries must never reach the selector; the weight range is validated at the
// configuration boundary, this is the engine-side guarantee.
func filter(candidates []domainoperator.Candidate, excluded map[uuid.UUID]struct{}) []domainoperator.Candidate {
	pool := make([]domainoperator.Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, skip := excluded[c.ID]; skip {
			continue
		}
		if c.Weight < 1 {
			continue
		}
		pool = append(pool, c)
	}
	return pool
}
