package collector

import (
	"bytes"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/model"
)

const Namespace = "huawei_metrics_"

// AddMetrics registers the device counts and one metric per field with a
// known unit.
func AddMetrics(registry prometheus.Registerer, log zerolog.Logger, fields model.Fields, devices *model.DeviceOverview) error {
	err := AddMetricsDevices(registry, devices)
	if err != nil {
		return err
	}
	AddMetricsFields(registry, log, fields)
	return nil
}

// Exposition renders the metrics of one scrape in the Prometheus text format.
func Exposition(log zerolog.Logger, fields model.Fields, devices *model.DeviceOverview) ([]byte, error) {
	registry := prometheus.NewRegistry()
	err := AddMetrics(prometheus.WrapRegistererWithPrefix(Namespace, registry), log, fields, devices)
	if err != nil {
		return nil, err
	}

	families, err := registry.Gather()
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	for _, family := range families {
		_, err = expfmt.MetricFamilyToText(&buf, family)
		if err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}
