package extract

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFields(t *testing.T) {
	fields, err := Fields(context.Background(), zerolog.Nop(), loadPage(t, "deviceinformation.html"))
	require.NoError(t, err)
	require.Len(t, fields, 7)

	version := fields["softwareVersion"]
	require.NotNil(t, version)
	assert.Equal(t, "deviceinformation.softwareVersion", version.LabelID)
	assert.Equal(t, "Software version", version.Label)
	assert.Equal(t, "di-SoftwareVersion", version.ValueID)
	assert.Equal(t, "11.0.1.2(H200SP3C9831)", version.RawValue)
	assert.Nil(t, version.Parsed)
	assert.False(t, version.Hidden)

	rsrp := fields["rsrp"]
	require.NotNil(t, rsrp)
	assert.Equal(t, "-95dBm", rsrp.RawValue)
	require.NotNil(t, rsrp.Parsed)
	assert.Equal(t, -95.0, rsrp.Parsed.Value)
	assert.Equal(t, "dBm", rsrp.Parsed.Unit)

	ulRate := fields["ulRate"]
	require.NotNil(t, ulRate)
	assert.True(t, ulRate.Hidden)
	require.NotNil(t, ulRate.Parsed)
	assert.Equal(t, 2.0, ulRate.Parsed.Value)
	assert.Equal(t, "Mbps", ulRate.Parsed.Unit)

	traffic := fields["totalTraffic"]
	require.NotNil(t, traffic.Parsed)
	assert.Equal(t, "GB", traffic.Parsed.Unit)

	imei := fields["imei"]
	require.NotNil(t, imei)
	assert.Equal(t, "", imei.RawValue)
	assert.Nil(t, imei.Parsed)
}

func TestFieldsDuplicateKeyKeepsLast(t *testing.T) {
	page := parsePage(t, `<div class="main_content">
<div class="clearboth"><div class="control-label"><span lang-id="a.rate">First</span></div><div class="controls-content" id="v1"><span>1Mbps</span></div></div>
<div class="clearboth"><div class="control-label"><span lang-id="b.rate">Second</span></div><div class="controls-content" id="v2"><span>2Mbps</span></div></div>
</div>`)

	fields, err := Fields(context.Background(), zerolog.Nop(), page)
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Second", fields["rate"].Label)
	assert.Equal(t, "b.rate", fields["rate"].LabelID)
}

func TestFieldsKeyKeepsInnerDots(t *testing.T) {
	page := parsePage(t, `<div class="main_content">
<div class="clearboth"><div class="control-label"><span lang-id="ns.wan.ip">WAN</span></div><div class="controls-content" id="v"><span>1.2.3.4</span></div></div>
</div>`)

	fields, err := Fields(context.Background(), zerolog.Nop(), page)
	require.NoError(t, err)
	require.Contains(t, fields, "wan.ip")
}

func TestFieldsStructuralErrors(t *testing.T) {
	tests := []struct {
		name string
		html string
	}{
		{
			name: "missing table",
			html: `<div class="other"></div>`,
		},
		{
			name: "missing label",
			html: `<div class="main_content"><div class="clearboth"><div class="controls-content" id="v"><span>1</span></div></div></div>`,
		},
		{
			name: "missing lang-id",
			html: `<div class="main_content"><div class="clearboth"><div class="control-label"><span>Label</span></div><div class="controls-content" id="v"><span>1</span></div></div></div>`,
		},
		{
			name: "label id without namespace",
			html: `<div class="main_content"><div class="clearboth"><div class="control-label"><span lang-id="plain">Label</span></div><div class="controls-content" id="v"><span>1</span></div></div></div>`,
		},
		{
			name: "missing value",
			html: `<div class="main_content"><div class="clearboth"><div class="control-label"><span lang-id="a.b">Label</span></div></div></div>`,
		},
		{
			name: "value without id",
			html: `<div class="main_content"><div class="clearboth"><div class="control-label"><span lang-id="a.b">Label</span></div><div class="controls-content"><span>1</span></div></div></div>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Fields(context.Background(), zerolog.Nop(), parsePage(t, tt.html))
			assert.ErrorIs(t, err, ErrStructure)
		})
	}
}

func TestFieldsEmptyTable(t *testing.T) {
	fields, err := Fields(context.Background(), zerolog.Nop(), parsePage(t, `<div class="main_content"></div>`))
	require.NoError(t, err)
	assert.Empty(t, fields)
}
