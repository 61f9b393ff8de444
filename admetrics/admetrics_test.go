package admetrics

import (
	"testing"

	"github.com/rcrowley/go-metrics"
	"github.com/stretchr/testify/assert"
)

func TestTransportMeterRegistersOnce(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry)

	first := m.TransportMeter("android")
	second := m.TransportMeter("android")
	assert.Equal(t, first, second, "repeated lookups must return the same meter")

	first.Mark(1)
	registered := registry.Get("transport.android.sends")
	if assert.NotNil(t, registered, "the meter should be registered under its transport name") {
		assert.Equal(t, int64(1), registered.(metrics.Meter).Count())
	}
}

func TestCoreMetersRegistered(t *testing.T) {
	registry := metrics.NewRegistry()
	m := NewMetrics(registry)

	m.TriggerMeter.Mark(1)
	m.SuppressionMeter.Mark(2)

	assert.Equal(t, int64(1), registry.Get("triggers").(metrics.Meter).Count())
	assert.Equal(t, int64(2), registry.Get("suppressions").(metrics.Meter).Count())
	assert.NotNil(t, registry.Get("trigger_time"))
}
