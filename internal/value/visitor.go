package value

import "github.com/holeyfield33-art/legacymsg/internal/floatsafe"

// Serializable is anything that can write itself through a Serializer. Both
// Value and ValueOrdered implement it; so can a caller's own record type,
// which is the "pluggable visitor interface" the package exposes in place of
// generating one automatically.
type Serializable interface {
	Serialize(s Serializer) error
}

// Serializer is implemented by each encoder (textual, binary). Aggregate
// lengths must be known up front, since the binary format prefixes them.
type Serializer interface {
	SerializeBool(b bool) error
	SerializeFloat(f floatsafe.Float) error
	SerializeString(s string) error
	SerializeNull() error
	BeginArray(length int) (ArraySerializer, error)
	BeginObject(length int) (ObjectSerializer, error)
}

// ArraySerializer accumulates the elements of one array.
type ArraySerializer interface {
	AppendElement(v Serializable) error
	Finish() error
}

// ObjectSerializer accumulates the entries of one object. Keys and values
// are appended as separate calls so an implementation can, for instance,
// write a colon between them without value needing to know that.
type ObjectSerializer interface {
	AppendKey(key string) error
	AppendValue(v Serializable) error
	Finish() error
}

// Visitor receives callbacks from a Deserializer as it parses one value.
// It is generic over the value type it builds (Value or ValueOrdered, or a
// caller's own type).
type Visitor[T any] interface {
	VisitNull() (T, error)
	VisitBool(b bool) (T, error)
	VisitFloat(f floatsafe.Float) (T, error)
	VisitString(s string) (T, error)
	VisitArray(a ArrayAccess[T]) (T, error)
	VisitObject(o ObjectAccess[T]) (T, error)
}

// ArrayAccess is handed to Visitor.VisitArray; repeated calls to NextElement
// decode successive elements until the array ends.
type ArrayAccess[T any] interface {
	// NextElement decodes the next element using v. ok is false once the
	// array has no more elements; at that point the zero T and a nil error
	// are returned.
	NextElement(v Visitor[T]) (elem T, ok bool, err error)
	// SizeHint returns the declared length of the array, or -1 if the
	// encoding does not know the length up front (the textual decoder
	// never does; the binary decoder always does, from its length prefix).
	SizeHint() int
}

// ObjectAccess is handed to Visitor.VisitObject; repeated calls to NextKey
// then NextValue decode successive entries until the object ends.
type ObjectAccess[T any] interface {
	// NextKey decodes the next key. has reports whether the object under
	// construction already contains a given key; an implementation must
	// call has(key) and fail with a duplicate-key error if it returns true,
	// before returning the key to the caller. ok is false once the object
	// has no more entries.
	NextKey(has func(key string) bool) (key string, ok bool, err error)
	// NextValue decodes the value for the key most recently returned by
	// NextKey, using v.
	NextValue(v Visitor[T]) (T, error)
	// SizeHint returns the declared length of the object, or -1 if unknown.
	SizeHint() int
}

// Deserializer describes a decoder whose DeserializeAny inspects the next
// token in the input and dispatches to the matching Visitor method. Neither
// the textual nor the binary decoder implements it; each offers the same
// dispatch as the generic function DecodeAny in its own package.
type Deserializer[T any] interface {
	DeserializeAny(v Visitor[T]) (T, error)
}
