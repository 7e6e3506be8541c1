package parse

import (
	"strconv"
	"strings"

	"github.com/swoga/huawei-exporter/model"
)

// units is the probe order for value suffixes. A unit must come before any
// shorter unit it ends with, B is tried last.
var units = []string{"dB", "dBm", "GB", "MB", "KB", "Gbps", "Mbps", "Kbps", "B"}

// TryParse returns the numeric part of raw if raw ends with exactly unit.
func TryParse(raw string, unit string) *model.Parsed {
	if !strings.HasSuffix(raw, unit) {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(raw, unit), 64)
	if err != nil {
		return nil
	}
	return &model.Parsed{
		Value: value,
		Unit:  unit,
	}
}

// Units returns a copy of the probe order.
func Units() []string {
	return append([]string(nil), units...)
}

// Value probes all units in order and reports Kbps as Mbps.
func Value(raw string) *model.Parsed {
	for _, unit := range units {
		parsed := TryParse(raw, unit)
		if parsed == nil {
			continue
		}
		if parsed.Unit == "Kbps" {
			parsed.Value /= 1024
			parsed.Unit = "Mbps"
		}
		return parsed
	}
	return nil
}
