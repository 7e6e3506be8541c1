package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/document"
	"github.com/swoga/huawei-exporter/model"
	"github.com/swoga/huawei-exporter/parse"
)

const (
	offlineMarker = "device_offline"
	hiddenMarker  = "hide"
)

var (
	onlineGroup    = document.ID("online_device")
	offlineGroup   = document.ID("offline_device")
	dataRow        = document.ID("data_row")
	deviceStatus   = document.Path(document.Child("div", 1))
	deviceName     = document.Path(document.Child("div", 2), document.Child("div", 2))
	deviceLink     = document.CSS(".device_Interface_string")
	deviceAddress  = document.CSS(".dev-table-ip")
	addressText    = document.Path(document.Child("span", document.Last))
	deviceUptime   = document.CSS(".dev-table-time")
	deviceLeaseEnd = document.CSS(".dev-table-time-down")
)

// Devices extracts the online and offline device tables of the device
// management page. The table a row is listed in decides whether it is online.
func Devices(ctx context.Context, log zerolog.Logger, page document.Node) (*model.DeviceOverview, error) {
	online, err := deviceGroup(ctx, log, page, onlineGroup, true)
	if err != nil {
		return nil, err
	}
	offline, err := deviceGroup(ctx, log, page, offlineGroup, false)
	if err != nil {
		return nil, err
	}
	return &model.DeviceOverview{
		Online:  online,
		Offline: offline,
	}, nil
}

func deviceGroup(ctx context.Context, log zerolog.Logger, page document.Node, group document.Locator, online bool) ([]model.Device, error) {
	container, err := find(ctx, page, group, "device group")
	if err != nil {
		return nil, err
	}
	rows, err := container.FindAll(ctx, dataRow)
	if err != nil {
		return nil, err
	}

	devices := make([]model.Device, 0, len(rows))
	for i, row := range rows {
		device, err := deviceRow(ctx, log, row, online)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", group, i, err)
		}
		log.Trace().Interface("device", device).Msg("found device")
		devices = append(devices, device)
	}
	return devices, nil
}

func deviceRow(ctx context.Context, log zerolog.Logger, row document.Node, online bool) (model.Device, error) {
	mac, ok, err := row.Attr(ctx, "mac")
	if err != nil {
		return model.Device{}, err
	}
	if !ok || mac == "" {
		return model.Device{}, structural("device listed without mac address")
	}
	log = log.With().Str("mac", mac).Logger()

	err = checkStatus(ctx, log, row, online)
	if err != nil {
		return model.Device{}, err
	}

	device := model.Device{
		MAC:    mac,
		Online: online,
	}
	if !online {
		return device, nil
	}

	device.Name, err = name(ctx, row)
	if err != nil {
		return model.Device{}, err
	}
	device.Connection, err = connection(ctx, log, row)
	if err != nil {
		return model.Device{}, err
	}
	device.Addresses, err = addresses(ctx, log, row)
	if err != nil {
		return model.Device{}, err
	}
	device.Uptime, err = minutes(ctx, log, row, deviceUptime, false)
	if err != nil {
		return model.Device{}, err
	}
	device.LeaseRemaining, err = minutes(ctx, log, row, deviceLeaseEnd, true)
	if err != nil {
		return model.Device{}, err
	}
	return device, nil
}

// checkStatus compares the row's own offline marker with the table it was
// found in and only logs a mismatch.
func checkStatus(ctx context.Context, log zerolog.Logger, row document.Node, online bool) error {
	status, err := findOptional(ctx, row, deviceStatus)
	if err != nil {
		return err
	}
	if status == nil {
		log.Debug().Msg("device row without status element")
		return nil
	}
	offline, present, err := attrContains(ctx, status, "class", offlineMarker)
	if err != nil {
		return err
	}
	if !present {
		log.Debug().Msg("device status element without class")
		return nil
	}
	if offline == online {
		log.Warn().Bool("listed_online", online).Bool("marked_offline", offline).Msg("device status does not match its table")
	}
	return nil
}

func name(ctx context.Context, row document.Node) (*string, error) {
	node, err := findOptional(ctx, row, deviceName)
	if err != nil || node == nil {
		return nil, err
	}
	value, ok, err := node.Attr(ctx, "name")
	if err != nil || !ok {
		return nil, err
	}
	return &value, nil
}

func connection(ctx context.Context, log zerolog.Logger, row document.Node) (*model.Connection, error) {
	node, err := findOptional(ctx, row, deviceLink)
	if err != nil {
		return nil, err
	}
	if node == nil {
		log.Trace().Msg("no interface element")
		return nil, nil
	}
	text, err := node.Text(ctx, true)
	if err != nil {
		return nil, err
	}
	return Connection(text), nil
}

// Connection classifies the interface text of an online device.
func Connection(text string) *model.Connection {
	switch text {
	case "5 GHz":
		return model.Wifi(model.Band5GHz)
	case "2.4 GHz":
		return model.Wifi(model.Band2_4GHz)
	case "":
		return nil
	default:
		return model.Other(text)
	}
}

func addresses(ctx context.Context, log zerolog.Logger, row document.Node) ([]string, error) {
	rows, err := row.FindAll(ctx, deviceAddress)
	if err != nil {
		return nil, err
	}
	addresses := []string{}
	for _, addressRow := range rows {
		class, ok, err := addressRow.Attr(ctx, "class")
		if err != nil {
			return nil, err
		}
		// rows without class are treated as hidden
		if !ok || strings.Contains(class, hiddenMarker) {
			continue
		}
		span, err := findOptional(ctx, addressRow, addressText)
		if err != nil {
			return nil, err
		}
		if span == nil {
			log.Debug().Msg("address row without text")
			continue
		}
		address, err := span.Text(ctx, true)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, address)
	}
	return addresses, nil
}

func minutes(ctx context.Context, log zerolog.Logger, row document.Node, locator document.Locator, countdown bool) (*model.MinuteCounter, error) {
	node, err := findOptional(ctx, row, locator)
	if err != nil {
		return nil, err
	}
	if node == nil {
		log.Trace().Stringer("locator", locator).Msg("no duration element")
		return nil, nil
	}
	text, err := node.Text(ctx, false)
	if err != nil {
		return nil, err
	}
	counter := parse.Minutes(text, countdown)
	if counter == nil {
		log.Trace().Str("text", text).Msg("duration not matching")
	}
	return counter, nil
}
