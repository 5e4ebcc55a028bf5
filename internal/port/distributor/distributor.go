package distributor

import (
	"context"

	"github.com/google/uuid"
)

// Result is the terminal outcome of one assignment call. Exactly one of the
// two states holds: Assigned with a concrete operator, or unassigned with
// OperatorID zero.
type Result struct {
	Assigned   bool
	OperatorID uuid.UUID
}

// Distributor routes a request to an operator for its source, or marks it
// waiting when no capacity exists. Unassigned is a legitimate outcome, not an
// error; errors are reserved for storage failures.
type Distributor interface {
	Assign(ctx context.Context, sourceID, requestID uuid.UUID) (Result, error)
}
