package attr

import (
	"math"
	"strconv"
	"strings"
	"unique"
)

// Kind identifies the concrete type stored in a Value.
type Kind uint8

const (
	// KindInvalid represents an invalid kind. Values of this kind have no
	// equality or hashing contract and are rejected at index construction.
	KindInvalid Kind = iota
	// KindNull represents a null value.
	KindNull
	// KindInt represents an integer value.
	KindInt
	// KindFloat represents a float value.
	KindFloat
	// KindString represents a string value.
	KindString
	// KindBool represents a boolean value.
	KindBool
	// KindArray represents an array value.
	KindArray
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindArray:
		return "array"
	default:
		return "invalid"
	}
}

// Value is a small typed attribute value.
//
// The representation is designed to make indexing fast and predictable:
// no reflection and no fmt-based stringification. Values support exactly the
// capability set an index over unsortable types needs — equality and hashing
// — and deliberately define no ordering.
//
// The zero Value has KindInvalid and is rejected by index construction.
type Value struct {
	Kind Kind
	I64  int64
	F64  float64
	s    unique.Handle[string] // private interned string
	B    bool
	A    []Value
}

// Null returns a null Value.
func Null() Value { return Value{Kind: KindNull} }

// Int returns an int64 Value.
func Int(v int64) Value { return Value{Kind: KindInt, I64: v} }

// Float returns a float64 Value.
func Float(v float64) Value { return Value{Kind: KindFloat, F64: v} }

// String returns a string Value.
func String(v string) Value { return Value{Kind: KindString, s: unique.Make(v)} }

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Array returns an array Value.
func Array(v []Value) Value { return Value{Kind: KindArray, A: v} }

// StringValue returns the string value if Kind is KindString, otherwise "".
func (v Value) StringValue() string {
	if v.Kind == KindString {
		return v.s.Value()
	}
	return ""
}

// Valid reports whether the value carries a usable kind.
func (v Value) Valid() bool {
	return v.Kind != KindInvalid
}

// Key returns a stable string representation for use as a map key and as the
// hashing input.
//
// Two Values are equal exactly when their Keys are equal, which guarantees
// the "equal values hash equal" contract for any hash computed over the Key.
// Floats are keyed by their bit pattern, so NaN equals itself and +0 differs
// from -0. Array keys prefix the element count and every element key's
// length, so element payloads cannot spoof the encoding.
func (v Value) Key() string {
	switch v.Kind {
	case KindNull:
		return "null"
	case KindInt:
		return "i:" + strconv.FormatInt(v.I64, 10)
	case KindFloat:
		return "f:" + strconv.FormatUint(math.Float64bits(v.F64), 16)
	case KindString:
		return "s:" + v.s.Value()
	case KindBool:
		if v.B {
			return "b:1"
		}
		return "b:0"
	case KindArray:
		var sb strings.Builder
		sb.WriteString("a")
		sb.WriteString(strconv.Itoa(len(v.A)))
		for i := range v.A {
			k := v.A[i].Key()
			sb.WriteString(":")
			sb.WriteString(strconv.Itoa(len(k)))
			sb.WriteString(":")
			sb.WriteString(k)
		}
		return sb.String()
	default:
		return "invalid"
	}
}

// Equal reports whether two values are equal. Only equality is defined for
// attribute values; there is intentionally no Less.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNull:
		return true
	case KindInt:
		return v.I64 == o.I64
	case KindFloat:
		return math.Float64bits(v.F64) == math.Float64bits(o.F64)
	case KindString:
		return v.s == o.s
	case KindBool:
		return v.B == o.B
	case KindArray:
		if len(v.A) != len(o.A) {
			return false
		}
		for i := range v.A {
			if !v.A[i].Equal(o.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
