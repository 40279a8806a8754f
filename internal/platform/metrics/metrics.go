package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics agrupa los collectors del servicio sobre un registry propio
// (no el global), así cada router/test tiene el suyo.
type Metrics struct {
	registry *prometheus.Registry

	requestDuration   *prometheus.HistogramVec
	mutations         *prometheus.CounterVec
	validationFailure prometheus.Counter
	snapshotWrites    *prometheus.CounterVec
	hydrations        *prometheus.CounterVec
	records           prometheus.Gauge
}

func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		registry: reg,
		requestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duración de requests HTTP por ruta.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patients_mutations_total",
			Help: "Mutaciones efectivas del listado de pacientes.",
		}, []string{"op"}),
		validationFailure: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "patients_validation_failures_total",
			Help: "Envíos de formulario rechazados por campos vacíos.",
		}),
		snapshotWrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patients_snapshot_writes_total",
			Help: "Escrituras del snapshot completo al slot durable.",
		}, []string{"result"}),
		hydrations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "patients_hydrations_total",
			Help: "Lecturas del slot al arrancar, por resultado.",
		}, []string{"result"}),
		records: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "patients_records",
			Help: "Cantidad de pacientes en memoria.",
		}),
	}

	reg.MustRegister(
		m.requestDuration,
		m.mutations,
		m.validationFailure,
		m.snapshotWrites,
		m.hydrations,
		m.records,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Handler expone el registry en formato Prometheus.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method, route, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

func (m *Metrics) Mutation(op string) {
	if m == nil {
		return
	}
	m.mutations.WithLabelValues(op).Inc()
}

func (m *Metrics) ValidationFailed() {
	if m == nil {
		return
	}
	m.validationFailure.Inc()
}

func (m *Metrics) SnapshotWrite(err error) {
	if m == nil {
		return
	}
	m.snapshotWrites.WithLabelValues(result(err)).Inc()
}

// Hydration recibe "ok", "empty" o "invalid".
func (m *Metrics) Hydration(res string) {
	if m == nil {
		return
	}
	m.hydrations.WithLabelValues(res).Inc()
}

func (m *Metrics) Records(n int) {
	if m == nil {
		return
	}
	m.records.Set(float64(n))
}

func result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
