package obs

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	domainOnce sync.Once

	// BillFinalizedTotal counts finalized bills by discount outcome.
	BillFinalizedTotal *prometheus.CounterVec
	// CartMutationTotal counts cart mutations by operation.
	CartMutationTotal *prometheus.CounterVec
	// DomainEventTotal counts emitted domain events by topic.
	DomainEventTotal *prometheus.CounterVec
)

// MustRegisterDomainMetrics initialises and registers domain-specific Prometheus collectors.
func MustRegisterDomainMetrics(namespace string, reg prometheus.Registerer) {
	domainOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}
		BillFinalizedTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bill_finalized_total",
			Help:      "Count of finalized bills by discount outcome.",
		}, []string{"discount"}))
		CartMutationTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cart_mutation_total",
			Help:      "Count of cart mutations by operation.",
		}, []string{"op"}))
		DomainEventTotal = register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "domain_event_total",
			Help:      "Count of emitted domain events by topic.",
		}, []string{"topic"}))
	})
}
