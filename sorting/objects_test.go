package sorting

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(objects []Object) []string {
	out := make([]string, len(objects))
	for i, obj := range objects {
		out[i], _ = obj["name"].(string)
	}

	return out
}

func TestObjectsByColumn(t *testing.T) {
	objects := []Object{
		{"name": "a", "age": 30.0},
		{"name": "b", "age": 25.0},
		{"name": "c"},
		{"name": "d", "age": "unknown"},
		{"name": "e", "age": 25.0},
		{"name": "f", "age": true},
		{"name": "g", "age": 41},
	}

	tests := map[string]struct {
		column    string
		ascending bool
		want      []string
	}{
		"NumbersAscending": {
			column:    "age",
			ascending: true,
			want:      []string{"b", "e", "a", "g", "d", "f", "c"},
		},
		"NumbersDescending": {
			column:    "age",
			ascending: false,
			want:      []string{"g", "a", "b", "e", "d", "f", "c"},
		},
		"StringsDescending": {
			column:    "name",
			ascending: false,
			want:      []string{"g", "f", "e", "d", "c", "b", "a"},
		},
		"MissingColumnKeepsOrder": {
			column:    "height",
			ascending: true,
			want:      []string{"a", "b", "c", "d", "e", "f", "g"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ObjectsByColumn(objects, tt.column, tt.ascending)
			assert.Equal(t, tt.want, names(got))
		})
	}

	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, names(objects))
}

func TestObjectsByColumn_NaN(t *testing.T) {
	objects := []Object{
		{"name": "nan", "x": math.NaN()},
		{"name": "str", "x": "text"},
		{"name": "one", "x": 1.0},
		{"name": "none"},
		{"name": "two", "x": 2.0},
	}

	tests := map[string]struct {
		ascending bool
		want      []string
	}{
		"Ascending": {
			ascending: true,
			want:      []string{"one", "two", "nan", "str", "none"},
		},
		"Descending": {
			ascending: false,
			want:      []string{"two", "one", "nan", "str", "none"},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got := ObjectsByColumn(objects, "x", tt.ascending)
			assert.Equal(t, tt.want, names(got))
		})
	}
}

func TestObjectsByColumn_JSONNumbers(t *testing.T) {
	dec := json.NewDecoder(strings.NewReader(`[
		{"name": "x", "score": 10},
		{"name": "y", "score": 2.5},
		{"name": "z", "score": -1}
	]`))
	dec.UseNumber()

	var objects []Object
	require.NoError(t, dec.Decode(&objects))

	got := ObjectsByColumn(objects, "score", true)
	assert.Equal(t, []string{"z", "y", "x"}, names(got))
}

func TestObjectsByKey(t *testing.T) {
	objects := []Object{
		{"name": "long", "tags": []any{"a", "b", "c"}},
		{"name": "none"},
		{"name": "short", "tags": []any{"a"}},
	}

	calls := 0
	key := func(obj Object) any {
		calls++

		tags, ok := obj["tags"].([]any)
		if !ok {
			return nil
		}

		return len(tags)
	}

	got := ObjectsByKey(objects, key, true)
	assert.Equal(t, []string{"short", "long", "none"}, names(got))
	assert.Equal(t, len(objects), calls)

	got = ObjectsByKey(objects, key, false)
	assert.Equal(t, []string{"long", "short", "none"}, names(got))
}

func TestObjectsByKey_Empty(t *testing.T) {
	got := ObjectsByKey(nil, func(Object) any { return nil }, true)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
