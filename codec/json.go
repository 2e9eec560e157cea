// Package codec converts records and ordered containers to and from JSON,
// preserving declaration or insertion order on the wire.
package codec

import (
	"bytes"
	"fmt"
	"reflect"

	j "github.com/goccy/go-json"

	gostruct "github.com/reoring/gostruct"
	"github.com/reoring/gostruct/ordered"
)

// EncodeJSON renders a record as a JSON object with fields in merged
// declaration order. Unset slots are omitted; explicit nils encode as null.
// Ad-hoc attributes are not encoded.
func EncodeJSON(r *gostruct.Record) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	for name := range r.Type().Fields() {
		v, ok := r.Get(name)
		if !ok {
			continue
		}
		if err := appendMember(buf, &first, name, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// DecodeJSON builds a validated record from a JSON object. Numbers are
// narrowed to the field's single accepted numeric type where possible; other
// mismatches follow the field's coercion setting.
func DecodeJSON(rt *gostruct.RecordType, data []byte, opts ...gostruct.NewOpt) (*gostruct.Record, error) {
	var m map[string]any
	dec := j.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("codec: decoding JSON object: %w", err)
	}
	narrowNumbers(rt, m)
	return rt.New(m, opts...)
}

// EncodeIndexJSON renders an ordered index as a JSON object in insertion
// order.
func EncodeIndexJSON[V any](ix *ordered.Index[string, V]) ([]byte, error) {
	buf := &bytes.Buffer{}
	buf.WriteByte('{')
	first := true
	for k, v := range ix.Items() {
		if err := appendMember(buf, &first, k, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// EncodeValuesJSON renders any ordered collection as a JSON array in its
// iteration order.
func EncodeValuesJSON[T any](c ordered.Collection[T]) ([]byte, error) {
	return j.Marshal(c.Values())
}

func appendMember(buf *bytes.Buffer, first *bool, name string, v any) error {
	if !*first {
		buf.WriteByte(',')
	}
	*first = false
	kb, err := j.Marshal(name)
	if err != nil {
		return fmt.Errorf("codec: encoding key %q: %w", name, err)
	}
	vb, err := j.Marshal(v)
	if err != nil {
		return fmt.Errorf("codec: encoding value of %q: %w", name, err)
	}
	buf.Write(kb)
	buf.WriteByte(':')
	buf.Write(vb)
	return nil
}

// narrowNumbers rewrites json.Number values into the single numeric type a
// field accepts, so strict fields do not need coercion enabled to take JSON
// input.
func narrowNumbers(rt *gostruct.RecordType, m map[string]any) {
	for name, f := range rt.Fields() {
		v, ok := m[name]
		if !ok {
			continue
		}
		num, ok := v.(j.Number)
		if !ok {
			continue
		}
		ts := f.Types()
		if len(ts) != 1 {
			continue
		}
		if nv, ok := narrowNumber(num, ts[0]); ok {
			m[name] = nv
		}
	}
}

func narrowNumber(num j.Number, target reflect.Type) (any, bool) {
	switch target.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i, err := num.Int64()
		if err != nil {
			return nil, false
		}
		return reflect.ValueOf(i).Convert(target).Interface(), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		i, err := num.Int64()
		if err != nil || i < 0 {
			return nil, false
		}
		return reflect.ValueOf(i).Convert(target).Interface(), true
	case reflect.Float32, reflect.Float64:
		fl, err := num.Float64()
		if err != nil {
			return nil, false
		}
		return reflect.ValueOf(fl).Convert(target).Interface(), true
	default:
		return nil, false
	}
}
