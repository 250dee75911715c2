// Package record implements the ordered field/value mapping every generated
// record converts to. Field order is fixed at build time and is the order
// used for JSON and YAML objects, CSV columns and fingerprint hashing.
package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Field is one named value. Values are string, int, bool, float64 or a
// nested Record.
type Field struct {
	Name  string
	Value any
}

// Record is an immutable ordered set of fields.
type Record struct {
	fields []Field
	index  map[string]int
}

// Builder accumulates fields in insertion order. Setting an existing name
// replaces its value in place.
type Builder struct {
	fields []Field
	index  map[string]int
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder {
	return &Builder{index: make(map[string]int)}
}

// Set adds or replaces a field.
func (b *Builder) Set(name string, v any) *Builder {
	if i, ok := b.index[name]; ok {
		b.fields[i].Value = v
		return b
	}
	b.index[name] = len(b.fields)
	b.fields = append(b.fields, Field{Name: name, Value: v})
	return b
}

// Build returns an immutable copy of the accumulated fields.
func (b *Builder) Build() Record {
	fields := make([]Field, len(b.fields))
	copy(fields, b.fields)
	index := make(map[string]int, len(fields))
	for i, f := range fields {
		index[f.Name] = i
	}
	return Record{fields: fields, index: index}
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.fields) }

// Fields returns a copy of the fields in order.
func (r Record) Fields() []Field {
	out := make([]Field, len(r.fields))
	copy(out, r.fields)
	return out
}

// Keys returns field names in order.
func (r Record) Keys() []string {
	out := make([]string, len(r.fields))
	for i, f := range r.fields {
		out[i] = f.Name
	}
	return out
}

// Get returns a value and whether the field is present.
func (r Record) Get(name string) (any, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.fields[i].Value, true
}

// Has reports whether a field is present.
func (r Record) Has(name string) bool {
	_, ok := r.index[name]
	return ok
}

// String returns the formatted value of a field, or "" when absent.
func (r Record) String(name string) string {
	v, ok := r.Get(name)
	if !ok {
		return ""
	}
	return Format(v)
}

// Map returns the fields as an unordered map.
func (r Record) Map() map[string]any {
	m := make(map[string]any, len(r.fields))
	for _, f := range r.fields {
		m[f.Name] = f.Value
	}
	return m
}

// Row projects the record onto columns. Absent fields become "".
func (r Record) Row(columns []string) []string {
	row := make([]string, len(columns))
	for i, c := range columns {
		row[i] = r.String(c)
	}
	return row
}

// Without returns a copy with the named fields removed.
func (r Record) Without(names ...string) Record {
	drop := make(map[string]bool, len(names))
	for _, n := range names {
		drop[n] = true
	}
	b := NewBuilder()
	for _, f := range r.fields {
		if !drop[f.Name] {
			b.Set(f.Name, f.Value)
		}
	}
	return b.Build()
}

// Flatten returns a copy with every key prefixed and nested records
// expanded in place, e.g. "identity.first_name".
func (r Record) Flatten(prefix string) Record {
	b := NewBuilder()
	r.flattenInto(b, prefix)
	return b.Build()
}

func (r Record) flattenInto(b *Builder, prefix string) {
	for _, f := range r.fields {
		if nested, ok := f.Value.(Record); ok {
			nested.flattenInto(b, prefix+f.Name+".")
			continue
		}
		b.Set(prefix+f.Name, f.Value)
	}
}

// MarshalJSON encodes the record as an object with keys in field order.
func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.fields {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("marshal key %q: %w", f.Name, err)
		}
		v, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Name, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML encodes the record as a mapping with keys in field order.
func (r Record) MarshalYAML() (any, error) {
	n := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.fields {
		var v yaml.Node
		if err := v.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("marshal field %q: %w", f.Name, err)
		}
		n.Content = append(n.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name},
			&v,
		)
	}
	return n, nil
}

// Format renders a value the way it appears in CSV cells and hash input.
func Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}
