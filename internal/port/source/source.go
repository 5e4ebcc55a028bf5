package source

import (
	"context"

	"github.com/google/uuid"

	domainsource "github.com/lanthe421/request-mesh/internal/domain/source"
)

// Repository manages source records.
type Repository interface {
	Create(ctx context.Context, s domainsource.Source) (domainsource.Source, error)
	GetByID(ctx context.Context, id uuid.UUID) (domainsource.Source, error)
	GetByIdentifier(ctx context.Context, identifier string) (domainsource.Source, error)
	List(ctx context.Context) ([]domainsource.Source, error)
}
