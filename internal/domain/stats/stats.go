package stats

import "github.com/google/uuid"

// OperatorLoad is one row of the load report. Every operator appears,
// active or not. LoadPct is 0 when MaxLoad is 0 — such an operator is
// structurally never eligible, so reporting 0% is the documented choice
// rather than dividing by zero.
type OperatorLoad struct {
	OperatorID  uuid.UUID `json:"operator_id"`
	Name        string    `json:"operator_name"`
	Active      bool      `json:"is_active"`
	CurrentLoad int       `json:"current_load"`
	MaxLoad     int       `json:"max_load_limit"`
	LoadPct     float64   `json:"load_percentage"`
}

// OperatorCount groups requests by assigned operator. A nil OperatorID is the
// unassigned bucket.
type OperatorCount struct {
	OperatorID *uuid.UUID `json:"operator_id"`
	Name       *string    `json:"operator_name"`
	Count      int        `json:"request_count"`
}

type SourceCount struct {
	SourceID uuid.UUID `json:"source_id"`
	Name     string    `json:"source_name"`
	Count    int       `json:"request_count"`
}

// Distribution is the full request-distribution report, derived purely from
// stored request rows — it never touches the assignment path.
type Distribution struct {
	ByOperator []OperatorCount `json:"by_operator"`
	BySource   []SourceCount   `json:"by_source"`
	Total      int             `json:"total_requests"`
	Unassigned int             `json:"unassigned_requests"`
}
