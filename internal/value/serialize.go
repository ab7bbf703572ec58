package value

// Serialize writes v through s, dispatching on v's variant. This mirrors the
// reference implementation's Serialize impl for Value: null/bool/float/
// string write directly, arrays and objects open an aggregate serializer and
// feed it one element or entry at a time.
func (v Value) Serialize(s Serializer) error {
	switch v.kind {
	case KindNull:
		return s.SerializeNull()
	case KindBool:
		return s.SerializeBool(v.b)
	case KindFloat:
		return s.SerializeFloat(v.f)
	case KindString:
		return s.SerializeString(v.s)
	case KindArray:
		arrSer, err := s.BeginArray(len(v.arr))
		if err != nil {
			return err
		}
		for _, elem := range v.arr {
			if err := arrSer.AppendElement(elem); err != nil {
				return err
			}
		}
		return arrSer.Finish()
	case KindObject:
		objSer, err := s.BeginObject(len(v.obj))
		if err != nil {
			return err
		}
		for key, val := range v.obj {
			if err := objSer.AppendKey(key); err != nil {
				return err
			}
			if err := objSer.AppendValue(val); err != nil {
				return err
			}
		}
		return objSer.Finish()
	default:
		panic("value: unreachable Kind in Serialize")
	}
}

// Serialize writes v through s. Object entries are written in the
// Ordered-Object's canonical iteration order (naturals first, then others in
// insertion order); for the signing-mode textual encoder, this is what makes
// the output byte-exact.
func (v ValueOrdered) Serialize(s Serializer) error {
	switch v.kind {
	case KindNull:
		return s.SerializeNull()
	case KindBool:
		return s.SerializeBool(v.b)
	case KindFloat:
		return s.SerializeFloat(v.f)
	case KindString:
		return s.SerializeString(v.s)
	case KindArray:
		arrSer, err := s.BeginArray(len(v.arr))
		if err != nil {
			return err
		}
		for _, elem := range v.arr {
			if err := arrSer.AppendElement(elem); err != nil {
				return err
			}
		}
		return arrSer.Finish()
	case KindObject:
		objSer, err := s.BeginObject(v.obj.Len())
		if err != nil {
			return err
		}
		for key, val := range v.obj.All() {
			if err := objSer.AppendKey(key); err != nil {
				return err
			}
			if err := objSer.AppendValue(val); err != nil {
				return err
			}
		}
		return objSer.Finish()
	default:
		panic("value: unreachable Kind in Serialize")
	}
}
