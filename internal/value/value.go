// Package value implements the abstract data model shared by every codec:
// the Value and ValueOrdered sum types, and the visitor/collection-access
// interfaces that decouple those types from any particular wire encoding.
//
// Value and ValueOrdered have identical shape — Null, Bool, Float, String,
// Array, Object — differing only in how the Object variant stores its
// entries. Value uses a plain map (no defined iteration order); ValueOrdered
// uses the Ordered-Object container from graphlex, which is the type a
// caller must use to reproduce a byte-exact signing encoding.
package value

import (
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/graphlex"
)

// Kind identifies which variant of the six-variant sum a Value or
// ValueOrdered currently holds.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindFloat
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is any valid legacy message value, with an unordered Object variant.
// Suitable for general reading and writing; use ValueOrdered when the
// byte-exact signing encoding of an object matters.
type Value struct {
	kind Kind
	b    bool
	f    floatsafe.Float
	s    string
	arr  []Value
	obj  map[string]Value
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// NewBool wraps b as a Bool value.
func NewBool(b bool) Value { return Value{kind: KindBool, b: b} }

// NewFloat wraps f as a Float value.
func NewFloat(f floatsafe.Float) Value { return Value{kind: KindFloat, f: f} }

// NewString wraps s as a String value.
func NewString(s string) Value { return Value{kind: KindString, s: s} }

// NewArray wraps elems as an Array value. elems is not copied.
func NewArray(elems []Value) Value { return Value{kind: KindArray, arr: elems} }

// NewObject wraps m as an Object value. m is not copied and must have
// unique keys (true of any Go map by construction).
func NewObject(m map[string]Value) Value { return Value{kind: KindObject, obj: m} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// AsBool returns v's bool and true if v is a Bool.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsFloat returns v's Float and true if v is a Float.
func (v Value) AsFloat() (floatsafe.Float, bool) { return v.f, v.kind == KindFloat }

// AsString returns v's string and true if v is a String.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns v's element slice and true if v is an Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.kind == KindArray }

// AsObject returns v's entry map and true if v is an Object.
func (v Value) AsObject() (map[string]Value, bool) { return v.obj, v.kind == KindObject }

// Equal reports whether a and b represent the same value, recursively.
// Array order matters; Object key order does not (Value is unordered).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindFloat:
		return floatsafe.Equal(a.f, b.f)
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if len(a.obj) != len(b.obj) {
			return false
		}
		for k, av := range a.obj {
			bv, ok := b.obj[k]
			if !ok || !Equal(av, bv) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// ValueOrdered is any valid legacy message value, with an order-preserving
// Object variant (see graphlex.Object). Use this form whenever the
// serialization order of object entries must be reproducible — in
// particular, for the canonical signing encoding that message signatures
// are computed over.
type ValueOrdered struct {
	kind Kind
	b    bool
	f    floatsafe.Float
	s    string
	arr  []ValueOrdered
	obj  graphlex.Object[ValueOrdered]
}

// NullOrdered returns the Null value.
func NullOrdered() ValueOrdered { return ValueOrdered{kind: KindNull} }

// NewBoolOrdered wraps b as a Bool value.
func NewBoolOrdered(b bool) ValueOrdered { return ValueOrdered{kind: KindBool, b: b} }

// NewFloatOrdered wraps f as a Float value.
func NewFloatOrdered(f floatsafe.Float) ValueOrdered {
	return ValueOrdered{kind: KindFloat, f: f}
}

// NewStringOrdered wraps s as a String value.
func NewStringOrdered(s string) ValueOrdered { return ValueOrdered{kind: KindString, s: s} }

// NewArrayOrdered wraps elems as an Array value. elems is not copied.
func NewArrayOrdered(elems []ValueOrdered) ValueOrdered {
	return ValueOrdered{kind: KindArray, arr: elems}
}

// NewObjectOrdered wraps an already-built Ordered-Object as an Object value.
func NewObjectOrdered(o graphlex.Object[ValueOrdered]) ValueOrdered {
	return ValueOrdered{kind: KindObject, obj: o}
}

// Entry is one key/value pair supplied to NewObjectOrderedFromEntries.
type Entry struct {
	Key   string
	Value ValueOrdered
}

// NewObjectOrderedFromEntries builds an Object value by inserting entries in
// order, which determines the position of any non-natural-like key in the
// resulting iteration order (natural-like keys sort by Grapho-Lex order
// regardless of insertion order). A repeated key overwrites the earlier one
// in place, matching graphlex.Object.Insert.
func NewObjectOrderedFromEntries(entries []Entry) ValueOrdered {
	var obj graphlex.Object[ValueOrdered]
	for _, e := range entries {
		obj.Insert(e.Key, e.Value)
	}
	return NewObjectOrdered(obj)
}

// Kind reports which variant v holds.
func (v ValueOrdered) Kind() Kind { return v.kind }

// AsBool returns v's bool and true if v is a Bool.
func (v ValueOrdered) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsFloat returns v's Float and true if v is a Float.
func (v ValueOrdered) AsFloat() (floatsafe.Float, bool) { return v.f, v.kind == KindFloat }

// AsString returns v's string and true if v is a String.
func (v ValueOrdered) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsArray returns v's element slice and true if v is an Array.
func (v ValueOrdered) AsArray() ([]ValueOrdered, bool) { return v.arr, v.kind == KindArray }

// AsObject returns v's Ordered-Object and true if v is an Object.
func (v ValueOrdered) AsObject() (*graphlex.Object[ValueOrdered], bool) {
	return &v.obj, v.kind == KindObject
}

// EqualOrdered reports whether a and b represent the same value,
// recursively. Both array and object entry order matter.
func EqualOrdered(a, b ValueOrdered) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.b == b.b
	case KindFloat:
		return floatsafe.Equal(a.f, b.f)
	case KindString:
		return a.s == b.s
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !EqualOrdered(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindObject:
		if a.obj.Len() != b.obj.Len() {
			return false
		}
		bKeys := make([]string, 0, b.obj.Len())
		bVals := make([]ValueOrdered, 0, b.obj.Len())
		for k, bv := range b.obj.All() {
			bKeys = append(bKeys, k)
			bVals = append(bVals, bv)
		}
		i := 0
		for k, av := range a.obj.All() {
			if bKeys[i] != k || !EqualOrdered(av, bVals[i]) {
				return false
			}
			i++
		}
		return true
	default:
		return false
	}
}
