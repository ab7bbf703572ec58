package graphlex

import (
	"iter"
	"sort"
)

// entry is one key/value pair held by an Object bucket.
type entry[V any] struct {
	key string
	val V
}

// Object is the Ordered-Object container: a map from string keys to values
// of type V with a single defined iteration order, backed by two buckets.
// Natural-like keys ("0" or [1-9][0-9]*) live in a slice kept sorted by
// Grapho-Lex order (which coincides with numeric order on these keys); every
// other key lives in a second slice in insertion order. Iteration walks the
// sorted bucket first, then the insertion-ordered one.
//
// The zero value is a valid, empty Object.
type Object[V any] struct {
	naturals []entry[V]
	others   []entry[V]
	// otherIdx maps an "others" key to its index in others, so duplicate
	// detection and lookup don't require a linear scan.
	otherIdx map[string]int
}

// Len returns the total number of entries across both buckets.
func (o *Object[V]) Len() int {
	return len(o.naturals) + len(o.others)
}

// HasKey reports whether key is already bound in this Object. This is the
// "seen-keys" state a Deserializer's next_key callback queries to reject
// duplicate keys without the value type needing to know anything about
// prior keys.
func (o *Object[V]) HasKey(key string) bool {
	if IsNaturalLike(key) {
		_, found := o.searchNaturals(key)
		return found
	}
	_, found := o.otherIdx[key]
	return found
}

// Insert binds key to val, returning the previously bound value (and true)
// if key was already present, or the zero value (and false) otherwise. Bucket
// membership is chosen from the key's shape and is disjoint by construction:
// a given key is either always natural-like or never, so duplicate
// detection need only consult the bucket the key belongs to.
func (o *Object[V]) Insert(key string, val V) (V, bool) {
	if IsNaturalLike(key) {
		return o.insertNatural(key, val)
	}
	return o.insertOther(key, val)
}

func (o *Object[V]) insertNatural(key string, val V) (V, bool) {
	idx, found := o.searchNaturals(key)
	if found {
		old := o.naturals[idx].val
		o.naturals[idx].val = val
		return old, true
	}
	o.naturals = append(o.naturals, entry[V]{})
	copy(o.naturals[idx+1:], o.naturals[idx:])
	o.naturals[idx] = entry[V]{key: key, val: val}
	var zero V
	return zero, false
}

func (o *Object[V]) insertOther(key string, val V) (V, bool) {
	if o.otherIdx == nil {
		o.otherIdx = make(map[string]int)
	}
	if idx, found := o.otherIdx[key]; found {
		old := o.others[idx].val
		o.others[idx].val = val
		return old, true
	}
	o.otherIdx[key] = len(o.others)
	o.others = append(o.others, entry[V]{key: key, val: val})
	var zero V
	return zero, false
}

// searchNaturals returns the index at which key is found, or the index at
// which it would need to be inserted to keep naturals sorted in Grapho-Lex
// order.
func (o *Object[V]) searchNaturals(key string) (int, bool) {
	idx := sort.Search(len(o.naturals), func(i int) bool {
		return !Less(o.naturals[i].key, key)
	})
	if idx < len(o.naturals) && o.naturals[idx].key == key {
		return idx, true
	}
	return idx, false
}

// Get returns the value bound to key, if any.
func (o *Object[V]) Get(key string) (V, bool) {
	if IsNaturalLike(key) {
		if idx, found := o.searchNaturals(key); found {
			return o.naturals[idx].val, true
		}
		var zero V
		return zero, false
	}
	if idx, found := o.otherIdx[key]; found {
		return o.others[idx].val, true
	}
	var zero V
	return zero, false
}

// All iterates the Object in its canonical order: natural-like keys first in
// Grapho-Lex (equivalently, numeric) order, then all other keys in the order
// they were first inserted.
func (o *Object[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for _, e := range o.naturals {
			if !yield(e.key, e.val) {
				return
			}
		}
		for _, e := range o.others {
			if !yield(e.key, e.val) {
				return
			}
		}
	}
}
