package model

// FieldRecord is one label/value row of the device information page.
type FieldRecord struct {
	LabelID  string  `json:"label_id"`
	Label    string  `json:"label"`
	ValueID  string  `json:"value_id"`
	RawValue string  `json:"raw_value"`
	Parsed   *Parsed `json:"parsed,omitempty"`
	Hidden   bool    `json:"hidden"`
}

// Parsed is only set when the raw value ends in a known unit.
type Parsed struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Fields maps the label id without its namespace to the row.
type Fields map[string]*FieldRecord

// Visible returns the fields not hidden on the page.
func (f Fields) Visible() Fields {
	visible := Fields{}
	for key, field := range f {
		if !field.Hidden {
			visible[key] = field
		}
	}
	return visible
}
