package gostruct

// Marker is a distinguished singleton compared by identity. Markers are used
// where "no value" must be distinguishable from every real value, nil
// included.
type Marker struct {
	name string
}

func (m *Marker) String() string { return m.name }

// Void is the field default meaning "no default": the field is required and a
// missing value surfaces as a required-field error when defaults are applied.
var Void = &Marker{name: "Void"}

// unset fills slots that have never been written. Distinct from an explicit
// nil so SetDefaults stays idempotent after a field is set to nil.
var unset = &Marker{name: "unset"}
