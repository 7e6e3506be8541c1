package collector

import (
	"encoding/json"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swoga/huawei-exporter/model"
)

func TestDocument(t *testing.T) {
	doc := Document(zerolog.Nop(), testFields(), testOverview())
	assert.Len(t, doc, 5)
	assert.Equal(t, testOverview(), doc["devices"])
	assert.Equal(t, testFields()["dlRate"], doc["dlRate"])
}

func TestDocumentFieldReplacesDevices(t *testing.T) {
	fields := model.Fields{"devices": {LabelID: "x.devices", Label: "Devices"}}
	doc := Document(zerolog.Nop(), fields, testOverview())
	assert.Len(t, doc, 1)
	assert.Equal(t, fields["devices"], doc["devices"])
}

func TestMarshalDocument(t *testing.T) {
	uptime := model.MinuteCounter{Minutes: 1500}
	name := "laptop"
	devices := &model.DeviceOverview{
		Online: []model.Device{{
			MAC:        "m1",
			Online:     true,
			Name:       &name,
			Connection: model.Wifi(model.Band2_4GHz),
			Addresses:  []string{"192.168.8.100"},
			Uptime:     &uptime,
		}},
		Offline: []model.Device{{MAC: "m2"}},
	}
	fields := model.Fields{
		"rsrp": {
			LabelID:  "deviceinformation.rsrp",
			Label:    "RSRP",
			ValueID:  "di-rsrp",
			RawValue: "-95dBm",
			Parsed:   &model.Parsed{Value: -95, Unit: "dBm"},
		},
	}

	out, err := MarshalDocument(zerolog.Nop(), fields, devices)
	require.NoError(t, err)

	expected := `{
  "devices": {
    "online": [
      {
        "mac": "m1",
        "online": true,
        "name": "laptop",
        "connection": {
          "wifi": "2.4GHz"
        },
        "addresses": [
          "192.168.8.100"
        ],
        "uptime": {
          "countdown": false,
          "minutes": 1500
        }
      }
    ],
    "offline": [
      {
        "mac": "m2",
        "online": false,
        "addresses": null
      }
    ]
  },
  "rsrp": {
    "label_id": "deviceinformation.rsrp",
    "label": "RSRP",
    "value_id": "di-rsrp",
    "raw_value": "-95dBm",
    "parsed": {
      "value": -95,
      "unit": "dBm"
    },
    "hidden": false
  }
}`
	assert.Equal(t, expected, string(out))

	var decoded struct {
		Devices model.DeviceOverview `json:"devices"`
	}
	require.NoError(t, json.Unmarshal(out, &decoded))
	assert.Equal(t, *devices, decoded.Devices)
}
