package operator

import (
	"time"

	"github.com/google/uuid"
)

// Operator is a CRM operator who handles user requests. CurrentLoad is mutated
// only through the directory's conditional increment/decrement — never by
// callers writing the field directly.
type Operator struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Active      bool      `json:"is_active"`
	MaxLoad     int       `json:"max_load_limit"`
	CurrentLoad int       `json:"current_load"`
	CreatedAt   time.Time `json:"created_at"`
}

func New(name string, maxLoad int) Operator {
	return Operator{
		ID:        uuid.New(),
		Name:      name,
		Active:    true,
		MaxLoad:   maxLoad,
		CreatedAt: time.Now().UTC(),
	}
}

// HasCapacity reports whether the operator can take one more request.
// Advisory only — the authoritative check happens inside the directory's
// conditional increment.
func (o *Operator) HasCapacity() bool {
	return o.CurrentLoad < o.MaxLoad
}

// Weight is the per-(operator, source) selection weight, unique per pair,
// always in [1,100]. Validated at the configuration boundary; the engine
// assumes every weight it sees is ≥ 1.
type Weight struct {
	OperatorID uuid.UUID `json:"operator_id"`
	SourceID   uuid.UUID `json:"source_id"`
	Weight     int       `json:"weight"`
	CreatedAt  time.Time `json:"created_at"`
}

// Candidate is one row of the ephemeral eligible-operator view: an active,
// under-capacity operator with a configured weight for the target source.
// Computed per assignment call, never stored.
type Candidate struct {
	ID          uuid.UUID
	Weight      int
	CurrentLoad int
	MaxLoad     int
}
