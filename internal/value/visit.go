package value

import (
	"github.com/holeyfield33-art/legacymsg/internal/floatsafe"
	"github.com/holeyfield33-art/legacymsg/internal/graphlex"
)

// ValueVisitor builds a Value from decoder callbacks. It is the Visitor any
// Deserializer[Value] should be driven with to get ordinary, unordered
// decoding.
type ValueVisitor struct {
	Limits Limits
}

var _ Visitor[Value] = ValueVisitor{}

func (ValueVisitor) VisitNull() (Value, error) { return Null(), nil }

func (ValueVisitor) VisitBool(b bool) (Value, error) { return NewBool(b), nil }

func (ValueVisitor) VisitFloat(f floatsafe.Float) (Value, error) { return NewFloat(f), nil }

func (ValueVisitor) VisitString(s string) (Value, error) { return NewString(s), nil }

func (vv ValueVisitor) VisitArray(a ArrayAccess[Value]) (Value, error) {
	elems := make([]Value, 0, vv.Limits.Cap(a.SizeHint()))
	for {
		elem, ok, err := a.NextElement(vv)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	return NewArray(elems), nil
}

func (vv ValueVisitor) VisitObject(o ObjectAccess[Value]) (Value, error) {
	m := make(map[string]Value, vv.Limits.Cap(o.SizeHint()))
	has := func(key string) bool {
		_, ok := m[key]
		return ok
	}
	for {
		key, ok, err := o.NextKey(has)
		if err != nil {
			return Value{}, err
		}
		if !ok {
			break
		}
		val, err := o.NextValue(vv)
		if err != nil {
			return Value{}, err
		}
		m[key] = val
	}
	return NewObject(m), nil
}

// ValueOrderedVisitor builds a ValueOrdered from decoder callbacks. Use this
// Visitor to preserve object entry order as it must be preserved for
// signature checking.
type ValueOrderedVisitor struct {
	Limits Limits
}

var _ Visitor[ValueOrdered] = ValueOrderedVisitor{}

func (ValueOrderedVisitor) VisitNull() (ValueOrdered, error) { return NullOrdered(), nil }

func (ValueOrderedVisitor) VisitBool(b bool) (ValueOrdered, error) {
	return NewBoolOrdered(b), nil
}

func (ValueOrderedVisitor) VisitFloat(f floatsafe.Float) (ValueOrdered, error) {
	return NewFloatOrdered(f), nil
}

func (ValueOrderedVisitor) VisitString(s string) (ValueOrdered, error) {
	return NewStringOrdered(s), nil
}

func (vv ValueOrderedVisitor) VisitArray(a ArrayAccess[ValueOrdered]) (ValueOrdered, error) {
	elems := make([]ValueOrdered, 0, vv.Limits.Cap(a.SizeHint()))
	for {
		elem, ok, err := a.NextElement(vv)
		if err != nil {
			return ValueOrdered{}, err
		}
		if !ok {
			break
		}
		elems = append(elems, elem)
	}
	return NewArrayOrdered(elems), nil
}

func (vv ValueOrderedVisitor) VisitObject(o ObjectAccess[ValueOrdered]) (ValueOrdered, error) {
	var obj graphlex.Object[ValueOrdered]
	has := func(key string) bool {
		return obj.HasKey(key)
	}
	for {
		key, ok, err := o.NextKey(has)
		if err != nil {
			return ValueOrdered{}, err
		}
		if !ok {
			break
		}
		val, err := o.NextValue(vv)
		if err != nil {
			return ValueOrdered{}, err
		}
		obj.Insert(key, val)
	}
	return NewObjectOrdered(obj), nil
}
