package rest

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics contadores Prometheus de las llamadas salientes al API.
// Un *Metrics nil es válido y no registra nada.
type Metrics struct {
	Requests *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registra los colectores en reg (prometheus.DefaultRegisterer si es nil).
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Total de llamadas al API por operación, método y status (o unreachable).",
		}, []string{"op", "method", "status"}),
		Duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "request_duration_seconds",
			Help:      "Duración de las llamadas al API en segundos.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op", "method"}),
	}
}

// statusUnreachable etiqueta de las llamadas sin respuesta.
const statusUnreachable = "unreachable"

func (m *Metrics) observe(op, method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	label := statusUnreachable
	if status > 0 {
		label = strconv.Itoa(status)
	}
	m.Requests.WithLabelValues(op, method, label).Inc()
	m.Duration.WithLabelValues(op, method).Observe(elapsed.Seconds())
}
