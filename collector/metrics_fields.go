package collector

import (
	"sort"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/model"
)

type MetricKind int

const (
	Unsupported MetricKind = iota
	Gauge
	Counter
)

func (k MetricKind) String() string {
	switch k {
	case Gauge:
		return "gauge"
	case Counter:
		return "counter"
	}
	return "unsupported"
}

var unitKinds = map[string]MetricKind{
	"Mbps": Gauge,
	"Kbps": Gauge,
	"Bps":  Gauge,
	"dBm":  Gauge,
	"dB":   Gauge,
	"MB":   Counter,
	"GB":   Counter,
	"KB":   Counter,
	"B":    Counter,
}

// Classify tells whether a unit is a measurement (rates, signal levels) or
// an accumulated total (data volumes).
func Classify(unit string) MetricKind {
	return unitKinds[unit]
}

func MetricName(key string, unit string) string {
	return strings.ToLower(key) + "_" + strings.ToLower(unit)
}

// AddMetricsFields registers fields with a gauge or counter unit, conflicting
// or invalid metric names are logged and skipped.
func AddMetricsFields(registry prometheus.Registerer, log zerolog.Logger, fields model.Fields) {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		field := fields[key]
		if field.Parsed == nil {
			continue
		}
		name := MetricName(key, field.Parsed.Unit)
		log := log.With().Str("key", key).Str("metric", name).Logger()

		var collector prometheus.Collector
		kind := Classify(field.Parsed.Unit)
		switch kind {
		case Gauge:
			gauge := prometheus.NewGauge(prometheus.GaugeOpts{
				Name: name,
				Help: field.Label,
			})
			gauge.Set(field.Parsed.Value)
			collector = gauge
		case Counter:
			// the router reports lifetime totals
			if field.Parsed.Value < 0 {
				log.Warn().Float64("value", field.Parsed.Value).Msg("skipping negative counter")
				continue
			}
			counter := prometheus.NewCounter(prometheus.CounterOpts{
				Name: name,
				Help: field.Label,
			})
			counter.Add(field.Parsed.Value)
			collector = counter
		default:
			log.Warn().Str("unit", field.Parsed.Unit).Stringer("kind", kind).Msg("skipping field because of unknown unit to metric conversion")
			continue
		}

		err := registry.Register(collector)
		if err != nil {
			log.Warn().Err(err).Msg("unable to register field metric")
		}
	}
}
