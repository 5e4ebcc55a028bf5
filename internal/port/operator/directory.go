package operator

import (
	"context"
	"errors"

	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
)

// ErrCapacityExhausted is returned by the conditional load increment when the
// operator had already reached max load by the time of the write — the caller
// lost the race for the last slot.
var ErrCapacityExhausted = errors.New("operator at max load")

// Directory is the narrow capacity-state interface the distribution engine
// needs. [ISP] The engine depends only on this, not the full Repository.
//
// ListEligible is an intentionally stale snapshot; CommitAssignment
// re-validates capacity at write time, which is the sole enforcement point of
// the current_load <= max_load_limit invariant.
type Directory interface {
	// ListEligible returns the active, under-capacity operators that have a
	// configured weight for the source. No lock is held after return.
	ListEligible(ctx context.Context, sourceID uuid.UUID) ([]domainoperator.Candidate, error)

	// CommitAssignment atomically increments the operator's load and binds the
	// request to it (operator_id + assigned status) in one transaction. Both
	// writes succeed or neither does. Returns ErrCapacityExhausted when the
	// operator is already full.
	CommitAssignment(ctx context.Context, operatorID, requestID uuid.UUID) error

	// TryIncrementLoad is the bare conditional increment, without a request
	// write. Returns ErrCapacityExhausted when the operator is already full.
	TryIncrementLoad(ctx context.Context, operatorID uuid.UUID) error

	// DecrementLoad releases one slot, used when a request completes.
	// Never drops current_load below zero.
	DecrementLoad(ctx context.Context, operatorID uuid.UUID) error
}
