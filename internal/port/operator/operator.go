package operator

import (
	"context"

	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
)

// Repository manages operator records and their per-source weight
// configuration.
type Repository interface {
	Create(ctx context.Context, o domainoperator.Operator) (domainoperator.Operator, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainoperator.Operator, error)
	List(ctx context.Context) ([]domainoperator.Operator, error)

	UpdateMaxLoad(ctx context.Context, id uuid.UUID, maxLoad int) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error

	// UpsertWeight creates or replaces the weight for an (operator, source)
	// pair. The pair is unique; weight must already be validated to [1,100].
	UpsertWeight(ctx context.Context, w domainoperator.Weight) error
	ListWeights(ctx context.Context, sourceID uuid.UUID) ([]domainoperator.Weight, error)
}
