package request

import (
	"context"

	"github.com/google/uuid"

	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
)

// Repository manages request records. The assigned-status write happens inside
// the operator directory's CommitAssignment transaction, not here.
type Repository interface {
	Create(ctx context.Context, r domainrequest.Request) (domainrequest.Request, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainrequest.Request, error)
	List(ctx context.Context, filters domainrequest.ListFilters) ([]domainrequest.Request, error)

	// MarkWaiting records the no-capacity terminal outcome: operator_id stays
	// null, status becomes waiting.
	MarkWaiting(ctx context.Context, id uuid.UUID) error

	// MarkCompleted finishes an assigned request. The operator load decrement
	// is the caller's responsibility.
	MarkCompleted(ctx context.Context, id uuid.UUID) error
}

// StatusWriter is the slice of Repository the distribution engine needs.
type StatusWriter interface {
	MarkWaiting(ctx context.Context, id uuid.UUID) error
}
