package user

import (
	"context"

	domainuser "github.com/lanthe421/request-mesh/internal/domain/user"
)

// Repository manages user records keyed by external identifier.
type Repository interface {
	Create(ctx context.Context, u domainuser.User) (domainuser.User, error)

	// GetByIdentifier returns the user and whether one exists. A missing user
	// is not an error — callers auto-create on first contact.
	GetByIdentifier(ctx context.Context, identifier string) (domainuser.User, bool, error)
}
