// Package decl imports record type declarations from YAML documents,
// building validated RecordTypes and registering them by name. Declaration
// order is preserved and name collisions are rejected.
package decl

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"reflect"
	"time"

	"gopkg.in/yaml.v3"

	gostruct "github.com/reoring/gostruct"
	"github.com/reoring/gostruct/ordered"
)

// Registry holds imported record types keyed by declared name. The strict
// index rejects two declarations with the same name instead of silently
// shadowing one.
type Registry = ordered.StrictIndex[string, *gostruct.RecordType]

// document is one YAML document carrying type declarations.
type document struct {
	Types []typeDecl `yaml:"types"`
}

type typeDecl struct {
	Name    string      `yaml:"name"`
	Extends []string    `yaml:"extends"`
	Compact bool        `yaml:"compact"`
	Fields  []fieldDecl `yaml:"fields"`
}

type fieldDecl struct {
	Name  string   `yaml:"name"`
	Types []string `yaml:"types"`
	// Default stays a raw node so an absent default (required field) is
	// distinguishable from an explicit null.
	Default yaml.Node `yaml:"default"`
	Coerce  bool      `yaml:"coerce"`
}

var typeTags = map[string]reflect.Type{
	"string": gostruct.T[string](),
	"int":    gostruct.T[int](),
	"float":  gostruct.T[float64](),
	"bool":   gostruct.T[bool](),
	"bytes":  gostruct.T[[]byte](),
	"any":    gostruct.T[any](),
	"list":   gostruct.T[[]any](),
	"map":    gostruct.T[map[string]any](),
	"time":   gostruct.T[time.Time](),
}

// ImportYAML scans a multi-document YAML stream and builds every declared
// type in order. Ancestors named in extends must be declared earlier in the
// stream (or in an earlier document).
func ImportYAML(data []byte) (*Registry, error) {
	reg := ordered.NewStrictIndex[string, *gostruct.RecordType]()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	for {
		var doc document
		if err := dec.Decode(&doc); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("decl: decoding YAML: %w", err)
		}
		for _, td := range doc.Types {
			rt, err := buildType(td, reg)
			if err != nil {
				return nil, err
			}
			if err := reg.Set(rt.Name(), rt); err != nil {
				return nil, fmt.Errorf("decl: type %s: %w", rt.Name(), err)
			}
		}
	}
	return reg, nil
}

func buildType(td typeDecl, reg *Registry) (*gostruct.RecordType, error) {
	if td.Name == "" {
		return nil, errors.New("decl: type declaration missing name")
	}
	b := gostruct.NewType(td.Name)
	for _, name := range td.Extends {
		anc, ok := reg.Get(name)
		if !ok {
			return nil, fmt.Errorf("decl: type %s extends unknown type %s", td.Name, name)
		}
		b.Extend(anc)
	}
	if td.Compact {
		b.Compact()
	}
	for _, fd := range td.Fields {
		f, err := buildField(td.Name, fd)
		if err != nil {
			return nil, err
		}
		b.Field(fd.Name, f)
	}
	return b.Build()
}

func buildField(typeName string, fd fieldDecl) (gostruct.Field, error) {
	var zero gostruct.Field
	if fd.Name == "" {
		return zero, fmt.Errorf("decl: type %s has a field declaration missing name", typeName)
	}
	types := make([]reflect.Type, 0, len(fd.Types))
	for _, tag := range fd.Types {
		t, ok := typeTags[tag]
		if !ok {
			return zero, fmt.Errorf("decl: field %s.%s: unknown type tag %q", typeName, fd.Name, tag)
		}
		types = append(types, t)
	}
	f := gostruct.NewField(types...)
	if !fd.Default.IsZero() {
		var v any
		if err := fd.Default.Decode(&v); err != nil {
			return zero, fmt.Errorf("decl: field %s.%s: decoding default: %w", typeName, fd.Name, err)
		}
		f = f.Default(normalizeDefault(v, types))
	}
	if fd.Coerce {
		f = f.Coerce()
	}
	return f, nil
}

// normalizeDefault converts a YAML scalar to the single numeric type the
// field accepts; YAML gives int for "0" where the field may want float.
func normalizeDefault(v any, types []reflect.Type) any {
	if v == nil || len(types) != 1 {
		return v
	}
	target := types[0]
	rv := reflect.ValueOf(v)
	if isNumericKind(rv.Kind()) && isNumericKind(target.Kind()) && rv.Type() != target {
		return rv.Convert(target).Interface()
	}
	return v
}

func isNumericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
