package gostruct

import (
	"fmt"
	"iter"
	"maps"
	"reflect"
	"slices"
	"strings"

	"github.com/reoring/gostruct/i18n"
)

// NewOpt configures record construction.
type NewOpt struct {
	// SkipDefaults leaves omitted fields unset for a later SetDefaults call.
	SkipDefaults bool
	// RelaxRequired stores nil for missing required fields instead of
	// failing while defaults are applied.
	RelaxRequired bool
}

// New builds a validated instance. values may name any subset of the merged
// fields; unknown names fail on compact types and become ad-hoc attributes
// otherwise. Omitted fields receive their default unless SkipDefaults is set.
// On error no instance is returned.
func (rt *RecordType) New(values map[string]any, opts ...NewOpt) (*Record, error) {
	var opt NewOpt
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}

	r := &Record{rtype: rt, slots: make([]any, rt.merged.Len())}
	for i := range r.slots {
		r.slots[i] = unset
	}
	if !rt.compact {
		r.extra = map[string]any{}
	}

	var iss Issues
	for _, name := range sortedKeys(values) {
		if _, ok := rt.pos[name]; ok {
			continue
		}
		if rt.compact {
			iss = AppendIssues(iss, unknownKeyIssue(rt, name))
			continue
		}
		r.extra[name] = values[name]
	}
	for name := range rt.merged.Items() {
		if v, ok := values[name]; ok {
			if err := r.Set(name, v); err != nil {
				iss = mergeIssues(iss, err)
			}
			continue
		}
		if opt.SkipDefaults {
			continue
		}
		f, _ := rt.merged.Get(name)
		dv, err := f.defaultValue(rt.fieldPath(name), opt.RelaxRequired)
		if err != nil {
			iss = mergeIssues(iss, err)
			continue
		}
		if err := r.Set(name, dv); err != nil {
			iss = mergeIssues(iss, err)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return r, nil
}

// MustNew is New that panics on validation errors.
func (rt *RecordType) MustNew(values map[string]any, opts ...NewOpt) *Record {
	r, err := rt.New(values, opts...)
	if err != nil {
		panic(fmt.Sprintf("gostruct: constructing %s: %v", rt.name, err))
	}
	return r
}

// Record is a mutable instance of a RecordType: one validated slot per
// merged field, plus untyped ad-hoc attributes on non-compact types.
type Record struct {
	rtype *RecordType
	slots []any
	extra map[string]any
}

// Type returns the record's type.
func (r *Record) Type() *RecordType { return r.rtype }

// Get returns the value of a field or ad-hoc attribute. ok is false when the
// name is unknown or the slot has not been set yet; an explicit nil reports
// ok.
func (r *Record) Get(name string) (any, bool) {
	if i, ok := r.rtype.pos[name]; ok {
		if r.slots[i] == any(unset) {
			return nil, false
		}
		return r.slots[i], true
	}
	if r.extra != nil {
		v, ok := r.extra[name]
		return v, ok
	}
	return nil, false
}

// Has reports whether the named field holds a value.
func (r *Record) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Set writes one field. The value is coerced when the field asks for it and
// rejected when its type is not accepted; the record is unchanged on error.
// Unknown names fail on compact types and are stored unvalidated otherwise.
func (r *Record) Set(name string, v any) error {
	f, ok := r.rtype.merged.Get(name)
	if !ok {
		if r.rtype.compact {
			return Issues{unknownKeyIssue(r.rtype, name)}
		}
		r.extra[name] = v
		return nil
	}
	v2, err := r.adaptChecked(name, f, v)
	if err != nil {
		return err
	}
	r.slots[r.rtype.pos[name]] = v2
	return nil
}

func (r *Record) adaptChecked(name string, f Field, v any) (any, error) {
	v2, err := f.Adapt(v)
	if err != nil {
		if iss, ok := AsIssues(err); ok {
			for i := range iss {
				iss[i].Path = r.rtype.fieldPath(name)
			}
			return nil, iss
		}
		return nil, err
	}
	if !f.accepts(v2) {
		return nil, Issues{{
			Path: r.rtype.fieldPath(name),
			Code: CodeInvalidType,
			Message: fmt.Sprintf("%s: %s.%s expected %s but got %T (%v)",
				i18n.T(CodeInvalidType, nil), r.rtype.name, name, typeNames(f.types), v, v),
			Params: map[string]any{
				"struct":   r.rtype.name,
				"field":    name,
				"expected": typeNames(f.types),
				"got":      fmt.Sprintf("%T", v),
				"value":    v,
			},
		}}
	}
	return v2, nil
}

// Update writes several fields at once. All values are validated first; on
// any error nothing is applied.
func (r *Record) Update(values map[string]any) error {
	staged := make(map[string]any, len(values))
	var iss Issues
	for _, name := range sortedKeys(values) {
		v := values[name]
		f, ok := r.rtype.merged.Get(name)
		if !ok {
			if r.rtype.compact {
				iss = AppendIssues(iss, unknownKeyIssue(r.rtype, name))
			} else {
				staged[name] = v
			}
			continue
		}
		v2, err := r.adaptChecked(name, f, v)
		if err != nil {
			iss = mergeIssues(iss, err)
			continue
		}
		staged[name] = v2
	}
	if len(iss) > 0 {
		return iss
	}
	for name, v := range staged {
		if i, ok := r.rtype.pos[name]; ok {
			r.slots[i] = v
		} else {
			r.extra[name] = v
		}
	}
	return nil
}

// SetDefaults fills every still-unset field with its computed default. A
// field explicitly set to nil is not unset and stays untouched, so calling
// SetDefaults twice is a no-op the second time. All defaults are computed
// before any slot is written.
func (r *Record) SetDefaults() error {
	staged := make(map[string]any)
	var iss Issues
	for name, f := range r.rtype.merged.Items() {
		if r.slots[r.rtype.pos[name]] != any(unset) {
			continue
		}
		dv, err := f.defaultValue(r.rtype.fieldPath(name), false)
		if err != nil {
			iss = mergeIssues(iss, err)
			continue
		}
		v2, err := r.adaptChecked(name, f, dv)
		if err != nil {
			iss = mergeIssues(iss, err)
			continue
		}
		staged[name] = v2
	}
	if len(iss) > 0 {
		return iss
	}
	for name, v := range staged {
		r.slots[r.rtype.pos[name]] = v
	}
	return nil
}

// Copy builds an independent instance of the same type, one field at a time,
// with caller-supplied overrides replacing the source value before write
// validation runs. Values are copied by reference (shallow copy).
func (r *Record) Copy(overrides ...map[string]any) (*Record, error) {
	var ov map[string]any
	if len(overrides) > 0 {
		ov = overrides[len(overrides)-1]
	}
	out := &Record{rtype: r.rtype, slots: slices.Clone(r.slots)}
	if r.extra != nil {
		out.extra = maps.Clone(r.extra)
	}
	var iss Issues
	for _, name := range sortedKeys(ov) {
		if err := out.Set(name, ov[name]); err != nil {
			iss = mergeIssues(iss, err)
		}
	}
	if len(iss) > 0 {
		return nil, iss
	}
	return out, nil
}

// Equal reports structural equality: same record type and equal values in
// every merged field. Ad-hoc attributes do not participate.
func (r *Record) Equal(o *Record) bool {
	if o == nil || r.rtype != o.rtype {
		return false
	}
	for i := range r.slots {
		if !reflect.DeepEqual(r.slots[i], o.slots[i]) {
			return false
		}
	}
	return true
}

// Items yields (name, value) pairs in merged declaration order. Unset slots
// yield nil; use Has to tell them apart from explicit nils.
func (r *Record) Items() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for name := range r.rtype.merged.Items() {
			v, _ := r.Get(name)
			if !yield(name, v) {
				return
			}
		}
	}
}

// Keys returns the merged field names in declaration order.
func (r *Record) Keys() []string { return r.rtype.FieldNames() }

// Values returns the field values in declaration order, nil for unset slots.
func (r *Record) Values() []any {
	out := make([]any, 0, len(r.slots))
	for _, v := range r.Items() {
		out = append(out, v)
	}
	return out
}

// FormatFields yields each field rendered through its formatter, in merged
// declaration order. Unset slots render as "<unset>".
func (r *Record) FormatFields() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for name, f := range r.rtype.merged.Items() {
			s := "<unset>"
			if v, ok := r.Get(name); ok {
				s = f.render(v)
			}
			if !yield(name, s) {
				return
			}
		}
	}
}

func (r *Record) String() string {
	parts := make([]string, 0, len(r.slots))
	for name, s := range r.FormatFields() {
		parts = append(parts, name+"="+s)
	}
	return "<" + r.rtype.name + " " + strings.Join(parts, ", ") + ">"
}

func unknownKeyIssue(rt *RecordType, name string) Issue {
	return Issue{
		Path:    rt.fieldPath(name),
		Code:    CodeUnknownKey,
		Message: fmt.Sprintf("%s: %s has no field %s", i18n.T(CodeUnknownKey, nil), rt.name, name),
		Params:  map[string]any{"struct": rt.name, "field": name},
	}
}

func mergeIssues(dst Issues, err error) Issues {
	if iss, ok := AsIssues(err); ok {
		return AppendIssues(dst, iss...)
	}
	return AppendIssues(dst, Issue{Code: CodeConfig, Message: err.Error(), Cause: err})
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}
