package sorting

import (
	"golang.org/x/exp/slices"
)

// Object is a decoded JSON object.
type Object = map[string]any

// KeyFunc extracts the sort key of an object. Returning nil ranks the object
// together with objects missing the key.
type KeyFunc func(Object) any

// ObjectsByColumn returns a copy of objects ordered by the value stored under
// column. Numbers are compared numerically and strings lexicographically.
// When the two values are of different kinds, numbers come first, then strings,
// then any other values, and objects without the column come last. This
// grouping is the same for both directions.
func ObjectsByColumn(objects []Object, column string, ascending bool) []Object {
	out := clone(objects)

	slices.SortStableFunc(out, func(a, b Object) int {
		va, aok := a[column]
		vb, bok := b[column]

		return compareValues(va, vb, aok, bok, ascending)
	})

	return out
}

// ObjectsByKey is like ObjectsByColumn, but the value to compare is computed
// by key. The key function is called exactly once per object.
func ObjectsByKey(objects []Object, key KeyFunc, ascending bool) []Object {
	type keyed struct {
		obj Object
		key any
	}

	items := make([]keyed, len(objects))
	for i, obj := range objects {
		items[i] = keyed{obj: obj, key: key(obj)}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return compareValues(a.key, b.key, a.key != nil, b.key != nil, ascending)
	})

	out := make([]Object, len(items))
	for i := range items {
		out[i] = items[i].obj
	}

	return out
}
