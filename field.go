package gostruct

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/reoring/gostruct/i18n"
)

// T returns the type tag for V. It works for interface types as well, which
// reflect.TypeOf on a value cannot express.
func T[V any]() reflect.Type { return reflect.TypeOf((*V)(nil)).Elem() }

// Field describes one record attribute: the accepted types (in declaration
// order), the default, and whether mismatched values are coerced to the
// accepted type. Fields are immutable; the chaining methods return modified
// copies, so a Field can be shared between record types.
type Field struct {
	types   []reflect.Type
	def     any
	factory func() any
	coerce  bool
	format  func(any) string
}

// NewField declares a field accepting the given types. A field without a
// default is required: applying defaults with no value present fails.
func NewField(types ...reflect.Type) Field {
	return Field{types: slices.Clone(types), def: Void}
}

// Default returns a copy of f with a literal default value. nil is a valid
// default and is distinct from having none.
func (f Field) Default(v any) Field {
	f.def = v
	f.factory = nil
	return f
}

// DefaultFunc returns a copy of f whose default is computed by fn once per
// instance, so mutable defaults are not shared.
func (f Field) DefaultFunc(fn func() any) Field {
	f.factory = fn
	return f
}

// Coerce returns a copy of f that converts mismatched values to the single
// accepted type. Declaring coercion alongside multiple accepted types is a
// configuration error reported when the record type is built.
func (f Field) Coerce() Field {
	f.coerce = true
	return f
}

// Format returns a copy of f that renders values through fn in Record.String.
func (f Field) Format(fn func(any) string) Field {
	f.format = fn
	return f
}

// Types returns the accepted type set in declaration order.
func (f Field) Types() []reflect.Type { return slices.Clone(f.types) }

// Coerced reports whether mismatched values are converted on write.
func (f Field) Coerced() bool { return f.coerce }

// Required reports whether the field has no default.
func (f Field) Required() bool { return f.factory == nil && f.def == any(Void) }

// Adapt attempts to convert v to the coercion target when its dynamic type is
// not accepted. It never rejects: with coercion disabled, or v already
// accepted, v comes back unchanged and the record write path decides. A
// failed conversion is a coercion error.
func (f Field) Adapt(v any) (any, error) {
	if v == nil || !f.coerce || f.accepts(v) {
		return v, nil
	}
	target := f.types[0]
	out, err := convertValue(v, target)
	if err != nil {
		return nil, Issues{{
			Code:    CodeCoercion,
			Message: i18n.T(CodeCoercion, map[string]string{"target": target.String()}),
			Cause:   err,
			Params:  map[string]any{"target": target.String(), "got": fmt.Sprintf("%T", v)},
		}}
	}
	return out, nil
}

// accepts reports whether v's dynamic type is in the accepted set. nil is
// accepted for any field, mirroring how absent and relaxed-required values
// are stored.
func (f Field) accepts(v any) bool {
	if v == nil {
		return true
	}
	dt := reflect.TypeOf(v)
	for _, t := range f.types {
		if dt == t || (t.Kind() == reflect.Interface && dt.Implements(t)) {
			return true
		}
	}
	return false
}

// validate reports declaration-time configuration errors.
func (f Field) validate(path string) Issues {
	var iss Issues
	if len(f.types) == 0 {
		iss = AppendIssues(iss, IssueAt(path, CodeConfig,
			i18n.T(CodeConfig, nil)+": field accepts no types", nil))
	}
	if f.coerce && len(f.types) != 1 {
		iss = AppendIssues(iss, IssueAt(path, CodeConfig,
			i18n.T(CodeConfig, nil)+": coercion requires exactly one accepted type", nil))
	}
	return iss
}

// defaultValue computes the field's default. relaxed turns a missing required
// value into nil instead of a required-field error.
func (f Field) defaultValue(path string, relaxed bool) (any, error) {
	if f.factory != nil {
		return f.factory(), nil
	}
	if f.def == any(Void) {
		if relaxed {
			return nil, nil
		}
		return nil, Issues{{
			Path:    path,
			Code:    CodeRequired,
			Message: i18n.T(CodeRequired, nil),
		}}
	}
	return f.def, nil
}

func (f Field) render(v any) string {
	if f.format != nil {
		return f.format(v)
	}
	return fmt.Sprint(v)
}

func typeNames(ts []reflect.Type) string {
	names := make([]string, len(ts))
	for i, t := range ts {
		names[i] = t.String()
	}
	return strings.Join(names, " or ")
}

// convertValue converts v to target, parsing strings into numbers and
// booleans and rendering non-strings into strings, so coercion behaves the
// way callers of a dynamic record library expect rather than following Go's
// rune-conversion rules.
func convertValue(v any, target reflect.Type) (any, error) {
	rv := reflect.ValueOf(v)
	switch {
	case target.Kind() == reflect.String:
		return reflect.ValueOf(fmt.Sprint(v)).Convert(target).Interface(), nil
	case rv.Kind() == reflect.String:
		return parseString(rv.String(), target)
	case rv.Type().ConvertibleTo(target):
		return rv.Convert(target).Interface(), nil
	default:
		return nil, fmt.Errorf("cannot convert %T to %s", v, target)
	}
}

func parseString(s string, target reflect.Type) (any, error) {
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(i).Convert(target).Interface(), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		u, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(u).Convert(target).Interface(), nil
	case reflect.Float32, reflect.Float64:
		fl, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(fl).Convert(target).Interface(), nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(b).Convert(target).Interface(), nil
	default:
		if reflect.TypeOf(s).ConvertibleTo(target) {
			return reflect.ValueOf(s).Convert(target).Interface(), nil
		}
		return nil, fmt.Errorf("cannot convert string to %s", target)
	}
}
