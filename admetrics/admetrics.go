package admetrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/admediate/admediate-server/config"
	"github.com/rcrowley/go-metrics"
	"github.com/vrischmann/go-metrics-influxdb"
)

const transportSends = "transport.%s.sends"

// Metrics holds the go-metrics instruments for the mediator.
type Metrics struct {
	registry metrics.Registry

	// TriggerMeter counts admitted triggers that completed their dispatch.
	TriggerMeter metrics.Meter
	// SuppressionMeter counts triggers rejected by the cooldown gate.
	SuppressionMeter metrics.Meter
	// SignalMeter counts direct sendSignal dispatches.
	SignalMeter metrics.Meter
	// FallbackMeter counts dispatches that found no bridge present.
	FallbackMeter metrics.Meter
	// ErrorMeter counts failures contained at the orchestrator boundary.
	ErrorMeter metrics.Meter

	TriggerTimer metrics.Timer

	transportMeters *sync.Map // map[string]metrics.Meter
}

func NewMetrics(registry metrics.Registry) *Metrics {
	return &Metrics{
		registry:         registry,
		TriggerMeter:     metrics.GetOrRegisterMeter("triggers", registry),
		SuppressionMeter: metrics.GetOrRegisterMeter("suppressions", registry),
		SignalMeter:      metrics.GetOrRegisterMeter("signals", registry),
		FallbackMeter:    metrics.GetOrRegisterMeter("fallbacks", registry),
		ErrorMeter:       metrics.GetOrRegisterMeter("errors", registry),
		TriggerTimer:     metrics.GetOrRegisterTimer("trigger_time", registry),
		transportMeters:  &sync.Map{},
	}
}

// TransportMeter returns the send meter for a bridge variant, registering it
// on first use.
func (m *Metrics) TransportMeter(name string) metrics.Meter {
	meter, loaded := m.transportMeters.LoadOrStore(name, metrics.NewMeter())
	if !loaded {
		m.registry.Register(fmt.Sprintf(transportSends, name), meter)
	}
	return meter.(metrics.Meter)
}

// Export begins exporting all the metrics to InfluxDB. This blocks
// indefinitely, so it should probably be run inside a goroutine.
func (m *Metrics) Export(cfg *config.Metrics) {
	influxdb.InfluxDB(
		m.registry,
		time.Duration(cfg.IntervalSeconds)*time.Second,
		cfg.Host,
		cfg.Database,
		cfg.Username,
		cfg.Password,
	)
}
