package request

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	// StatusPending: inserted but not yet routed through the engine.
	StatusPending Status = "pending"
	// StatusAssigned: bound to an operator; OperatorID is set.
	StatusAssigned Status = "assigned"
	// StatusWaiting: no eligible operator at commit time; OperatorID is null.
	StatusWaiting Status = "waiting"
	// StatusCompleted: released; the operator's load was decremented.
	StatusCompleted Status = "completed"
)

// Request is a user request awaiting (or holding) an operator assignment.
// OperatorID and the assigned/waiting status are written exactly once, by the
// distribution engine, atomically with the operator load change.
type Request struct {
	ID         uuid.UUID  `json:"id"`
	UserID     uuid.UUID  `json:"user_id"`
	SourceID   uuid.UUID  `json:"source_id"`
	OperatorID *uuid.UUID `json:"operator_id,omitempty"`
	Message    string     `json:"message"`
	Status     Status     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
}

func New(userID, sourceID uuid.UUID, message string) Request {
	return Request{
		ID:        uuid.New(),
		UserID:    userID,
		SourceID:  sourceID,
		Message:   message,
		Status:    StatusPending,
		CreatedAt: time.Now().UTC(),
	}
}

type ListFilters struct {
	SourceID   *uuid.UUID
	OperatorID *uuid.UUID
	Status     *Status
}
