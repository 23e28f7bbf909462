// Package txtree models amino JSON transactions as a closed set of value
// variants and produces the canonical bytes that get signed.
package txtree

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
)

const (
	// MaxDepth bounds the nesting of arrays and objects.
	MaxDepth = 64
	// MaxWidth bounds the number of elements of a single array or object.
	MaxWidth = 1 << 17
)

// ErrMalformedTxTree is returned for trees that cannot be parsed or do not
// have the shape a transaction needs.
var ErrMalformedTxTree = errors.New("malformed transaction tree")

// Kind identifies a Value variant.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Value is one of Null, Bool, Number, String, Array or Object.
type Value interface {
	Kind() Kind
	isValue()
}

// Null is the JSON null.
type Null struct{}

// Bool is a JSON boolean.
type Bool bool

// Number is a JSON number kept as its literal text.
type Number string

// String is a JSON string.
type String string

// Array is an ordered list of values.
type Array []Value

// Member is a single key of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that keeps its keys in insertion order. Keys are
// unique when built with Parse or With.
type Object []Member

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Number) Kind() Kind { return KindNumber }
func (String) Kind() Kind { return KindString }
func (Array) Kind() Kind  { return KindArray }
func (Object) Kind() Kind { return KindObject }

func (Null) isValue()   {}
func (Bool) isValue()   {}
func (Number) isValue() {}
func (String) isValue() {}
func (Array) isValue()  {}
func (Object) isValue() {}

// IsNull reports whether v is Null or a nil interface.
func IsNull(v Value) bool {
	if v == nil {
		return true
	}
	_, ok := v.(Null)
	return ok
}

// Float64 parses the number literal.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Get returns the value stored under key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// With returns a copy of o with key set to v. An existing key keeps its
// position, a new key is appended.
func (o Object) With(key string, v Value) Object {
	out := make(Object, len(o), len(o)+1)
	copy(out, o)
	for i := range out {
		if out[i].Key == key {
			out[i].Value = v
			return out
		}
	}
	return append(out, Member{Key: key, Value: v})
}

// Keys returns the keys in stored order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// Parse decodes JSON into a Value. Object key order is kept, duplicate keys
// keep the last value.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	v, err := parseValue(dec, 0)
	if err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("%w: trailing data after value", ErrMalformedTxTree)
	}
	return v, nil
}

func parseValue(dec *json.Decoder, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformedTxTree, MaxDepth)
	}

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
	}

	switch t := tok.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(t), nil
	case json.Number:
		return Number(t), nil
	case string:
		return String(t), nil
	case json.Delim:
		switch t {
		case '[':
			arr := Array{}
			for dec.More() {
				elem, err := parseValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				if len(arr) == MaxWidth {
					return nil, fmt.Errorf("%w: array wider than %d", ErrMalformedTxTree, MaxWidth)
				}
				arr = append(arr, elem)
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
			}
			return arr, nil
		case '{':
			obj := Object{}
			index := make(map[string]int)
			for dec.More() {
				keyTok, err := dec.Token()
				if err != nil {
					return nil, fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("%w: object key is %T", ErrMalformedTxTree, keyTok)
				}
				val, err := parseValue(dec, depth+1)
				if err != nil {
					return nil, err
				}
				if i, dup := index[key]; dup {
					obj[i].Value = val
					continue
				}
				if len(obj) == MaxWidth {
					return nil, fmt.Errorf("%w: object wider than %d", ErrMalformedTxTree, MaxWidth)
				}
				index[key] = len(obj)
				obj = append(obj, Member{Key: key, Value: val})
			}
			if _, err := dec.Token(); err != nil {
				return nil, fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
			}
			return obj, nil
		}
	}
	return nil, fmt.Errorf("%w: unexpected token %v", ErrMalformedTxTree, tok)
}

// Marshal writes v as compact JSON. Objects are written in stored order.
// Scalars are formatted exactly as encoding/json formats string and float64
// values, which is what the Cosmos SDK uses when it sorts sign bytes.
func Marshal(v Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := writeValue(&buf, v, 0); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeValue(buf *bytes.Buffer, v Value, depth int) error {
	if depth > MaxDepth {
		return fmt.Errorf("%w: nesting deeper than %d", ErrMalformedTxTree, MaxDepth)
	}

	switch t := v.(type) {
	case nil, Null:
		buf.WriteString("null")
	case Bool:
		buf.WriteString(strconv.FormatBool(bool(t)))
	case Number:
		f, err := t.Float64()
		if err != nil {
			return fmt.Errorf("%w: bad number %q", ErrMalformedTxTree, string(t))
		}
		b, err := json.Marshal(f)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
		}
		buf.Write(b)
	case String:
		b, err := json.Marshal(string(t))
		if err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, elem := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeValue(buf, elem, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(m.Key)
			if err != nil {
				return fmt.Errorf("%w: %v", ErrMalformedTxTree, err)
			}
			buf.Write(key)
			buf.WriteByte(':')
			if err := writeValue(buf, m.Value, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("%w: unknown value %T", ErrMalformedTxTree, v)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o Object) MarshalJSON() ([]byte, error) { return Marshal(o) }

// MarshalJSON implements json.Marshaler.
func (a Array) MarshalJSON() ([]byte, error) { return Marshal(a) }

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) { return Marshal(n) }
