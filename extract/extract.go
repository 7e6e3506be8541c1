// Package extract turns the router's admin pages into typed records.
package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/document"
	"github.com/swoga/huawei-exporter/model"
)

// ErrStructure is returned when the page no longer has the expected layout.
var ErrStructure = errors.New("unexpected page structure")

type Result struct {
	Fields  model.Fields
	Devices *model.DeviceOverview
}

// Run extracts both pages. The nodes must not be queried concurrently.
func Run(ctx context.Context, log zerolog.Logger, informationPage document.Node, managementPage document.Node) (*Result, error) {
	fields, err := Fields(ctx, log, informationPage)
	if err != nil {
		return nil, fmt.Errorf("error extracting device information: %w", err)
	}
	devices, err := Devices(ctx, log, managementPage)
	if err != nil {
		return nil, fmt.Errorf("error extracting device list: %w", err)
	}
	return &Result{
		Fields:  fields,
		Devices: devices,
	}, nil
}

func structural(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrStructure, fmt.Sprintf(format, args...))
}

// find wraps a miss of a required node as a structural error.
func find(ctx context.Context, node document.Node, locator document.Locator, what string) (document.Node, error) {
	found, err := node.Find(ctx, locator)
	if errors.Is(err, document.ErrNotFound) {
		return nil, structural("%s (%s) missing", what, locator)
	}
	if err != nil {
		return nil, err
	}
	return found, nil
}

// findOptional returns nil without error if the node does not exist.
func findOptional(ctx context.Context, node document.Node, locator document.Locator) (document.Node, error) {
	found, err := node.Find(ctx, locator)
	if errors.Is(err, document.ErrNotFound) {
		return nil, nil
	}
	return found, err
}

func attrContains(ctx context.Context, node document.Node, name string, marker string) (contains bool, present bool, err error) {
	value, ok, err := node.Attr(ctx, name)
	if err != nil || !ok {
		return false, ok, err
	}
	return strings.Contains(value, marker), true, nil
}
