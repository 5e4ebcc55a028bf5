package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Distribution-engine Prometheus metrics. Standalone package so both the
// service and transport layers can reference them without import cycles.

var (
	AssignmentsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "requestmesh_assignments_total",
		Help: "Assignment calls by terminal outcome (assigned|unassigned)",
	}, []string{"outcome"})

	AssignmentRetries = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requestmesh_assignment_retries_total",
		Help: "Commit attempts rejected by a lost capacity race",
	})

	RequestsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "requestmesh_requests_created_total",
		Help: "Requests accepted through the creation endpoint",
	})
)

// Register registers engine metrics on the given registry (or default if nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	for _, c := range []prometheus.Collector{AssignmentsTotal, AssignmentRetries, RequestsCreated} {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
