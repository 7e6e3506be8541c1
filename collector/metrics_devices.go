package collector

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/swoga/huawei-exporter/model"
)

type DeviceCounts struct {
	Online   int
	Offline  int
	Total    int
	Wifi     int
	Wifi2GHz int
	Wifi5GHz int
}

// CountDevices only looks at online devices for the wifi counts, offline
// devices carry no connection.
func CountDevices(devices *model.DeviceOverview) DeviceCounts {
	counts := DeviceCounts{
		Online:  len(devices.Online),
		Offline: len(devices.Offline),
		Total:   len(devices.Online) + len(devices.Offline),
	}
	for _, device := range devices.Online {
		if device.Connection == nil || device.Connection.Kind != model.ConnectionWifi {
			continue
		}
		counts.Wifi++
		switch device.Connection.Band {
		case model.Band2_4GHz:
			counts.Wifi2GHz++
		case model.Band5GHz:
			counts.Wifi5GHz++
		}
	}
	return counts
}

func AddMetricsDevices(registry prometheus.Registerer, devices *model.DeviceOverview) error {
	counts := CountDevices(devices)

	for _, device := range []struct {
		name  string
		help  string
		count int
	}{
		{"online_devices", "Number of online devices", counts.Online},
		{"offline_devices", "Number of offline devices", counts.Offline},
		{"total_devices", "Number of total devices", counts.Total},
		{"wifi_devices", "Number of wifi devices", counts.Wifi},
		{"wifi_2ghz_devices", "Number of 2.4 GHz wifi devices", counts.Wifi2GHz},
		{"wifi_5ghz_devices", "Number of 5 GHz wifi devices", counts.Wifi5GHz},
	} {
		gauge := prometheus.NewGauge(prometheus.GaugeOpts{
			Name: device.name,
			Help: device.help,
		})
		err := registry.Register(gauge)
		if err != nil {
			return err
		}
		gauge.Set(float64(device.count))
	}
	return nil
}
