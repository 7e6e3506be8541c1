package collector

import (
	"encoding/json"

	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/model"
)

const devicesKey = "devices"

// Document merges the device overview and all fields into one object.
// A field named like the device key replaces it.
func Document(log zerolog.Logger, fields model.Fields, devices *model.DeviceOverview) map[string]interface{} {
	doc := make(map[string]interface{}, len(fields)+1)
	doc[devicesKey] = devices
	for key, field := range fields {
		if _, ok := doc[key]; ok {
			log.Error().Str("key", key).Msg("field overwrites existing document key")
		}
		doc[key] = field
	}
	return doc
}

func MarshalDocument(log zerolog.Logger, fields model.Fields, devices *model.DeviceOverview) ([]byte, error) {
	return json.MarshalIndent(Document(log, fields, devices), "", "  ")
}
