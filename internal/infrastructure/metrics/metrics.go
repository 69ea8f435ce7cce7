// Package metrics expone los contadores Prometheus del servicio.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics contadores de persistencia y auditoría.
type Metrics struct {
	Registry     *prometheus.Registry
	storeOps     *prometheus.CounterVec
	auditEntries prometheus.Counter
}

// New registra los contadores en un registro propio (más los colectores de Go y proceso).
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		storeOps: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "farmledger_store_operations_total",
			Help: "Operaciones sobre colecciones por resultado.",
		}, []string{"collection", "op", "result"}),
		auditEntries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "farmledger_audit_entries_total",
			Help: "Entradas escritas en la bitácora de auditoría.",
		}),
	}
	reg.MustRegister(
		m.storeOps,
		m.auditEntries,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// Observe implementa collection.Observer.
func (m *Metrics) Observe(collection, op string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.storeOps.WithLabelValues(collection, op, result).Inc()
}

// AuditRecorded incrementa el contador de auditoría.
func (m *Metrics) AuditRecorded() {
	m.auditEntries.Inc()
}
