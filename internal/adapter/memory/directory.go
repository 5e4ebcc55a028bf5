// Package memory provides a mutex-guarded, in-process implementation of the
// operator directory and request store. It backs concurrency tests and demo
// runs where a database is unwanted; semantics mirror the Postgres adapter,
// including the atomic check-and-increment.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	domainoperator "github.com/lanthe421/request-mesh/internal/domain/operator"
	domainrequest "github.com/lanthe421/request-mesh/internal/domain/request"
	portoperator "github.com/lanthe421/request-mesh/internal/port/operator"
	portrequest "github.com/lanthe421/request-mesh/internal/port/request"
)

type Directory struct {
	mu        sync.Mutex
	operators map[uuid.UUID]*domainoperator.Operator
	weights   map[uuid.UUID]map[uuid.UUID]int // sourceID → operatorID → weight
	requests  map[uuid.UUID]*domainrequest.Request
}

var (
	_ portoperator.Directory   = (*Directory)(nil)
	_ portrequest.StatusWriter = (*Directory)(nil)
)

func NewDirectory() *Directory {
	return &Directory{
		operators: make(map[uuid.UUID]*domainoperator.Operator),
		weights:   make(map[uuid.UUID]map[uuid.UUID]int),
		requests:  make(map[uuid.UUID]*domainrequest.Request),
	}
}

// AddOperator seeds an operator. Test/demo setup helper, not part of any port.
func (d *Directory) AddOperator(o domainoperator.Operator) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := o
	d.operators[o.ID] = &cp
}

func (d *Directory) SetWeight(operatorID, sourceID uuid.UUID, weight int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.weights[sourceID] == nil {
		d.weights[sourceID] = make(map[uuid.UUID]int)
	}
	d.weights[sourceID][operatorID] = weight
}

func (d *Directory) AddRequest(r domainrequest.Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	cp := r
	d.requests[r.ID] = &cp
}

// Operator returns a copy of the stored operator state.
func (d *Directory) Operator(id uuid.UUID) (domainoperator.Operator, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	o, ok := d.operators[id]
	if !ok {
		return domainoperator.Operator{}, false
	}
	return *o, true
}

func (d *Directory) Request(id uuid.UUID) (domainrequest.Request, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	r, ok := d.requests[id]
	if !ok {
		return domainrequest.Request{}, false
	}
	return *r, true
}

func (d *Directory) ListEligible(_ context.Context, sourceID uuid.UUID) ([]domainoperator.Candidate, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var candidates []domainoperator.Candidate
	for operatorID, weight := range d.weights[sourceID] {
		o, ok := d.operators[operatorID]
		if !ok || !o.Active || o.CurrentLoad >= o.MaxLoad {
			continue
		}
		candidates = append(candidates, domainoperator.Candidate{
			ID:          operatorID,
			Weight:      weight,
			CurrentLoad: o.CurrentLoad,
			MaxLoad:     o.MaxLoad,
		})
	}
	return candidates, nil
}

func (d *Directory) CommitAssignment(_ context.Context, operatorID, requestID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.requests[requestID]
	if !ok {
		return fmt.Errorf("request %s not found", requestID)
	}
	if r.OperatorID != nil {
		return fmt.Errorf("request %s already routed", requestID)
	}
	if err := d.incrementLocked(operatorID); err != nil {
		return err
	}

	id := operatorID
	r.OperatorID = &id
	r.Status = domainrequest.StatusAssigned
	return nil
}

func (d *Directory) TryIncrementLoad(_ context.Context, operatorID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.incrementLocked(operatorID)
}

func (d *Directory) DecrementLoad(_ context.Context, operatorID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	o, ok := d.operators[operatorID]
	if !ok || o.CurrentLoad == 0 {
		return fmt.Errorf("operator %s not found or load already zero", operatorID)
	}
	o.CurrentLoad--
	return nil
}

func (d *Directory) MarkWaiting(_ context.Context, id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	r, ok := d.requests[id]
	if !ok {
		return fmt.Errorf("request %s not found", id)
	}
	if r.OperatorID != nil {
		return fmt.Errorf("request %s already assigned", id)
	}
	r.Status = domainrequest.StatusWaiting
	return nil
}

// incrementLocked is the check-and-write under d.mu — the memory analogue of
// the conditional UPDATE in the Postgres adapter.
func (d *Directory) incrementLocked(operatorID uuid.UUID) error {
	o, ok := d.operators[operatorID]
	if !ok {
		return fmt.Errorf("operator %s not found", operatorID)
	}
	if !o.Active || o.CurrentLoad >= o.MaxLoad {
		return portoperator.ErrCapacityExhausted
	}
	o.CurrentLoad++
	return nil
}
