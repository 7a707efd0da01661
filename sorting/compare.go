package sorting

import (
	"encoding/json"

	"golang.org/x/exp/constraints"
)

// compareOrdered returns the three-way comparison of a and b in the requested
// direction. NaN (x != x) sorts after every other value in both directions.
func compareOrdered[T constraints.Ordered](a, b T, ascending bool) int {
	aNaN, bNaN := a != a, b != b //nolint:gocritic

	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	}

	var c int

	if a < b {
		c = -1
	} else if a > b {
		c = 1
	}

	if !ascending {
		c = -c
	}

	return c
}

func compareFloats(a, b float64, ascending bool) int {
	return compareOrdered(a, b, ascending)
}

// Kind ranks of object column values. The rank decides the order between
// values that cannot be compared directly and does not flip with direction.
const (
	rankNumber = iota
	rankString
	rankOther
	rankMissing
)

// compareValues compares two decoded JSON values. Numbers compare with
// numbers, strings with strings; anything else is ordered by rank only.
func compareValues(a, b any, aok, bok bool, ascending bool) int {
	ra, fa, sa := classify(a, aok)
	rb, fb, sb := classify(b, bok)

	if ra != rb {
		if ra < rb {
			return -1
		}

		return 1
	}

	switch ra {
	case rankNumber:
		return compareFloats(fa, fb, ascending)
	case rankString:
		return compareOrdered(sa, sb, ascending)
	default:
		return 0
	}
}

func classify(v any, ok bool) (rank int, num float64, str string) {
	if !ok || v == nil {
		return rankMissing, 0, ""
	}

	if s, isStr := v.(string); isStr {
		return rankString, 0, s
	}

	if f, isNum := toFloat(v); isNum {
		return rankNumber, f, ""
	}

	return rankOther, 0, ""
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}

	return 0, false
}
