package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/swoga/huawei-exporter/document"
	"github.com/swoga/huawei-exporter/model"
	"github.com/swoga/huawei-exporter/parse"
)

/*
<div class="clearboth" style="padding-top:20px;">
    <div class="control-label" style="margin-top: 8px;">
        <span lang-id="deviceinformation.softwareVersion">Software version</span>
    </div>
    <div class="controls controls-content" id="di-SoftwareVersion">
        <span>11.0.1.2(H200SP3C9831)</span>
    </div>
</div>
*/

const hiddenStyle = "display: none;"

var (
	fieldTable     = document.CSS(".main_content")
	fieldRow       = document.CSS(".clearboth")
	fieldLabel     = document.CSS(".control-label")
	fieldLabelSpan = document.CSS("span")
	fieldValue     = document.CSS(".controls-content")
	fieldValueSpan = document.CSS("span")
)

// Fields extracts all rows of the device information page.
func Fields(ctx context.Context, log zerolog.Logger, page document.Node) (model.Fields, error) {
	table, err := find(ctx, page, fieldTable, "device information table")
	if err != nil {
		return nil, err
	}
	rows, err := table.FindAll(ctx, fieldRow)
	if err != nil {
		return nil, err
	}

	fields := model.Fields{}
	for i, row := range rows {
		key, field, err := fieldRecord(ctx, log, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		log.Trace().Str("key", key).Interface("field", field).Msg("adding row")

		if existing, ok := fields[key]; ok {
			log.Warn().Str("key", key).Str("previous", existing.LabelID).Str("label_id", field.LabelID).Msg("duplicate field key, keeping last")
		}
		fields[key] = field
	}
	return fields, nil
}

func fieldRecord(ctx context.Context, log zerolog.Logger, row document.Node) (string, *model.FieldRecord, error) {
	hidden, _, err := attrContains(ctx, row, "style", hiddenStyle)
	if err != nil {
		return "", nil, err
	}

	label, err := find(ctx, row, fieldLabel, "label")
	if err != nil {
		return "", nil, err
	}
	labelSpan, err := find(ctx, label, fieldLabelSpan, "label text")
	if err != nil {
		return "", nil, err
	}
	labelID, ok, err := labelSpan.Attr(ctx, "lang-id")
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, structural("label without lang-id")
	}
	_, key, ok := strings.Cut(labelID, ".")
	if !ok {
		return "", nil, structural("label id %q without namespace", labelID)
	}
	labelText, err := labelSpan.Text(ctx, true)
	if err != nil {
		return "", nil, err
	}

	value, err := find(ctx, row, fieldValue, "value of "+labelID)
	if err != nil {
		return "", nil, err
	}
	valueID, ok, err := value.Attr(ctx, "id")
	if err != nil {
		return "", nil, err
	}
	if !ok {
		return "", nil, structural("value of %s without id", labelID)
	}

	raw, err := rawValue(ctx, value)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", nil, err
		}
		log.Warn().Err(err).Str("label_id", labelID).Msg("unable to extract value")
		raw = ""
	}

	return key, &model.FieldRecord{
		LabelID:  labelID,
		Label:    labelText,
		ValueID:  valueID,
		RawValue: raw,
		Parsed:   parse.Value(raw),
		Hidden:   hidden,
	}, nil
}

// rawValue joins all spans, the router splits number and unit into separate spans.
func rawValue(ctx context.Context, value document.Node) (string, error) {
	spans, err := value.FindAll(ctx, fieldValueSpan)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	for _, span := range spans {
		text, err := span.Text(ctx, true)
		if err != nil {
			return "", err
		}
		sb.WriteString(text)
	}
	return sb.String(), nil
}
