package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts the user-visible operations of the ordering API.
type Metrics struct {
	ordersCompleted    prometheus.Counter
	cartMutations      *prometheus.CounterVec
	catalogReloads     prometheus.Counter
	recommendationHits prometheus.Counter
	reservationsValid  prometheus.Counter
	reservationsFailed prometheus.Counter
}

// New registers the metrics on the default registerer.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer allows tests to use an isolated registry.
func NewWithRegisterer(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		ordersCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinner_orders_completed_total",
			Help: "Total number of completed checkouts",
		}),
		cartMutations: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "dinner_cart_mutations_total",
			Help: "Total number of cart mutations by operation",
		}, []string{"op"}),
		catalogReloads: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinner_catalog_reload_requests_total",
			Help: "Total number of catalog reload requests",
		}),
		recommendationHits: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinner_recommendation_requests_total",
			Help: "Total number of recommendation computations",
		}),
		reservationsValid: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinner_reservations_accepted_total",
			Help: "Total number of accepted reservations",
		}),
		reservationsFailed: registerCounter(registerer, prometheus.CounterOpts{
			Name: "dinner_reservations_rejected_total",
			Help: "Total number of reservations rejected by validation",
		}),
	}
}

func (m *Metrics) OrderCompleted()        { m.ordersCompleted.Inc() }
func (m *Metrics) CartMutation(op string) { m.cartMutations.WithLabelValues(op).Inc() }
func (m *Metrics) CatalogReload()         { m.catalogReloads.Inc() }
func (m *Metrics) RecommendationRequest() { m.recommendationHits.Inc() }

func (m *Metrics) ReservationOutcome(valid bool) {
	if valid {
		m.reservationsValid.Inc()
	} else {
		m.reservationsFailed.Inc()
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	c := prometheus.NewCounter(opts)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if ok := isAlreadyRegistered(err, &already); ok {
			return already.ExistingCollector.(prometheus.Counter)
		}
		panic(err)
	}
	return c
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	c := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if ok := isAlreadyRegistered(err, &already); ok {
			return already.ExistingCollector.(*prometheus.CounterVec)
		}
		panic(err)
	}
	return c
}

func isAlreadyRegistered(err error, target *prometheus.AlreadyRegisteredError) bool {
	if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
		*target = are
		return true
	}
	return false
}
