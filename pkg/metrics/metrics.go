package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type OrderMetrics struct {
	OrdersCreated     prometheus.Counter
	StatusTransitions *prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "jetak",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})
	transitions := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "jetak",
		Subsystem: "orders",
		Name:      "status_transitions_total",
		Help:      "Total number of committed order status transitions.",
	}, []string{"to_status"})

	prometheus.MustRegister(created, transitions)
	return &OrderMetrics{OrdersCreated: created, StatusTransitions: transitions}
}

func (m *OrderMetrics) IncCreated() {
	if m == nil {
		return
	}
	m.OrdersCreated.Inc()
}

func (m *OrderMetrics) IncTransition(to string) {
	if m == nil {
		return
	}
	m.StatusTransitions.WithLabelValues(to).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
