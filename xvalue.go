package gostruct

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// XValue is a "rich" value carrying an arbitrary set of named attributes
// alongside the value itself.
type XValue struct {
	Value any
	Attrs map[string]any
}

// NewXValue wraps v with the given attributes.
func NewXValue(v any, attrs map[string]any) *XValue {
	return &XValue{Value: v, Attrs: maps.Clone(attrs)}
}

func (x *XValue) String() string {
	parts := make([]string, 0, len(x.Attrs))
	for _, k := range slices.Sorted(maps.Keys(x.Attrs)) {
		parts = append(parts, fmt.Sprintf("%s=%v", k, x.Attrs[k]))
	}
	return fmt.Sprintf("<xvalue %v; %s>", x.Value, strings.Join(parts, ", "))
}
