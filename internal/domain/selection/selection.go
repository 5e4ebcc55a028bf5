// Package selection implements weighted random choice over eligible operators
// using the cumulative-weights method. The random draw is supplied by the
// caller, so selection is a pure function and fully reproducible under test.
package selection

import (
	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
)

// Total sums candidate weights. Non-positive weights contribute nothing; the
// engine filters them out before selection, so in practice every weight is ≥ 1.
func Total(candidates []domainoperator.Candidate) int {
	total := 0
	for _, c := range candidates {
		if c.Weight > 0 {
			total += c.Weight
		}
	}
	return total
}

// Pick returns the candidate whose cumulative range contains draw.
//
// Ranges are half-open: with weights [20,30,50] the ranges are [0,20),
// [20,50) and [50,100), so a boundary draw equal to a cumulative sum falls
// into the next candidate's range. Selection probability is exactly
// weight_i / total. draw must be in [0, Total(candidates)).
//
// The second return value is false only when the list is empty or no
// candidate carries positive weight — a non-empty weighted list always yields
// exactly one id.
func Pick(candidates []domainoperator.Candidate, draw int) (uuid.UUID, bool) {
	if len(candidates) == 0 {
		return uuid.Nil, false
	}

	cumulative := 0
	for _, c := range candidates {
		if c.Weight <= 0 {
			continue
		}
		cumulative += c.Weight
		if draw < cumulative {
			return c.ID, true
		}
	}

	if cumulative == 0 {
		return uuid.Nil, false
	}
	// draw >= total: out-of-contract input, clamp to the last weighted range.
	for i := len(candidates) - 1; i >= 0; i-- {
		if candidates[i].Weight > 0 {
			return candidates[i].ID, true
		}
	}
	return uuid.Nil, false
}
