package gostruct

import (
	"fmt"
	"iter"

	"github.com/reoring/gostruct/i18n"
	"github.com/reoring/gostruct/ordered"
)

// TypeBuilder assembles a RecordType from locally declared fields and an
// ordered list of ancestor types. Declaration problems accumulate and
// surface together at Build.
type TypeBuilder struct {
	name      string
	own       *ordered.StrictIndex[string, Field]
	ancestors []*RecordType
	compact   bool
	issues    Issues
}

// NewType opens a builder for a record type with the given name.
func NewType(name string) *TypeBuilder {
	return &TypeBuilder{name: name, own: ordered.NewStrictIndex[string, Field]()}
}

// Field declares a local field. Redeclaring a name already declared on this
// builder is a duplicate-key error.
func (b *TypeBuilder) Field(name string, f Field) *TypeBuilder {
	if err := b.own.Set(name, f); err != nil {
		b.issues = AppendIssues(b.issues, Issue{
			Path:    "/" + b.name + "/" + name,
			Code:    CodeDuplicateKey,
			Message: i18n.T(CodeDuplicateKey, map[string]string{"key": name}),
			Cause:   err,
		})
	}
	return b
}

// Extend appends ancestor types. Ancestors are overlaid in declaration
// order, so on a name collision between siblings the last-listed ancestor
// wins; local fields override every ancestor.
func (b *TypeBuilder) Extend(ancestors ...*RecordType) *TypeBuilder {
	b.ancestors = append(b.ancestors, ancestors...)
	return b
}

// Compact makes instances allocate exactly one slot per merged field and
// reject writes to undeclared names. Compactness is inherited: extending a
// compact ancestor yields a compact type.
func (b *TypeBuilder) Compact() *TypeBuilder {
	b.compact = true
	return b
}

// Build validates the declarations, computes the merged field table once,
// and returns the immutable record type.
func (b *TypeBuilder) Build() (*RecordType, error) {
	iss := b.issues
	for name, f := range b.own.Items() {
		iss = AppendIssues(iss, f.validate("/"+b.name+"/"+name)...)
	}
	if len(iss) > 0 {
		return nil, iss
	}

	// Every ancestor's merged table already folds its own chain root-first,
	// so overlaying ancestors left to right keeps the root-to-derived order.
	merged := ordered.NewIndex[string, Field]()
	compact := b.compact
	for _, anc := range b.ancestors {
		if anc.compact {
			compact = true
		}
		for name, f := range anc.merged.Items() {
			merged.Set(name, f)
		}
	}
	for name, f := range b.own.Items() {
		merged.Set(name, f)
	}

	pos := make(map[string]int, merged.Len())
	for i, name := range merged.Keys() {
		pos[name] = i
	}
	return &RecordType{
		name:    b.name,
		own:     b.own,
		merged:  merged,
		pos:     pos,
		compact: compact,
	}, nil
}

// MustBuild is Build that panics on declaration errors.
func (b *TypeBuilder) MustBuild() *RecordType {
	rt, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("gostruct: building type %s: %v", b.name, err))
	}
	return rt
}

// RecordType is a composed, inheritance-aware field table capable of
// constructing validated instances. It is immutable after Build.
type RecordType struct {
	name    string
	own     *ordered.StrictIndex[string, Field]
	merged  *ordered.Index[string, Field]
	pos     map[string]int
	compact bool
}

// Name returns the declared type name.
func (rt *RecordType) Name() string { return rt.name }

// IsCompact reports whether instances reject undeclared attribute names.
func (rt *RecordType) IsCompact() bool { return rt.compact }

// NumFields returns the size of the merged field table.
func (rt *RecordType) NumFields() int { return rt.merged.Len() }

// Field looks up a merged field by name.
func (rt *RecordType) Field(name string) (Field, bool) { return rt.merged.Get(name) }

// Fields yields the merged field table in declaration order (root-most
// ancestor first, each name at its first-declared position with the
// most-derived descriptor).
func (rt *RecordType) Fields() iter.Seq2[string, Field] { return rt.merged.Items() }

// OwnFields yields only the fields declared on this type.
func (rt *RecordType) OwnFields() iter.Seq2[string, Field] { return rt.own.Items() }

// FieldNames returns the merged field names in declaration order.
func (rt *RecordType) FieldNames() []string { return rt.merged.Keys() }

func (rt *RecordType) fieldPath(name string) string {
	return "/" + rt.name + "/" + name
}
