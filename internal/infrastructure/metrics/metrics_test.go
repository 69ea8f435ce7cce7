package metrics_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/farm-ledger/internal/infrastructure/metrics"
)

func TestObserve_CuentaPorResultado(t *testing.T) {
	m := metrics.New()
	m.Observe("batches", "create", nil)
	m.Observe("batches", "create", nil)
	m.Observe("batches", "create", errors.New("disco lleno"))
	m.AuditRecorded()

	families, err := m.Registry.Gather()
	require.NoError(t, err)

	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			key := mf.GetName()
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "result" {
					key += "/" + lp.GetValue()
				}
			}
			values[key] = metric.GetCounter().GetValue()
		}
	}
	assert.Equal(t, 2.0, values["farmledger_store_operations_total/ok"])
	assert.Equal(t, 1.0, values["farmledger_store_operations_total/error"])
	assert.Equal(t, 1.0, values["farmledger_audit_entries_total"])
}
