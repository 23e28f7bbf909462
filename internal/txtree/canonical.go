package txtree

import (
	"fmt"
	"slices"
	"strings"
)

// PrepareSignBytes strips amino {type, value} envelopes, sorts object keys
// and drops null members, recursively. Array order is kept.
//
// An object is an envelope when its only non-null members are "type" and
// "value". Null members count as absent, so {"type":..,"value":..,"x":null}
// is unwrapped even though it has three keys. Counting the null would make the
// transform non-idempotent, since a second pass sees the null already dropped.
func PrepareSignBytes(v Value) (Value, error) {
	return prepare(v, 0)
}

func prepare(v Value, depth int) (Value, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: nesting deeper than %d", ErrMalformedTxTree, MaxDepth)
	}

	switch t := v.(type) {
	case nil:
		return Null{}, nil
	case Array:
		out := make(Array, len(t))
		for i, elem := range t {
			p, err := prepare(elem, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = p
		}
		return out, nil
	case Object:
		if inner, ok := envelopeValue(t); ok {
			return prepare(inner, depth+1)
		}
		present := make(Object, 0, len(t))
		index := make(map[string]int, len(t))
		for _, m := range t {
			if IsNull(m.Value) {
				continue
			}
			if i, dup := index[m.Key]; dup {
				present[i].Value = m.Value
				continue
			}
			index[m.Key] = len(present)
			present = append(present, m)
		}
		slices.SortStableFunc(present, func(a, b Member) int {
			return strings.Compare(a.Key, b.Key)
		})
		out := make(Object, len(present))
		for i, m := range present {
			p, err := prepare(m.Value, depth+1)
			if err != nil {
				return nil, err
			}
			out[i] = Member{Key: m.Key, Value: p}
		}
		return out, nil
	default:
		return v, nil
	}
}

func envelopeValue(o Object) (Value, bool) {
	var typ, val Value
	count := 0
	for _, m := range o {
		if IsNull(m.Value) {
			continue
		}
		switch m.Key {
		case "type":
			typ = m.Value
		case "value":
			val = m.Value
		}
		count++
	}
	if count != 2 || typ == nil || val == nil {
		return nil, false
	}
	return val, true
}
