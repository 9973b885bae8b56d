package collection_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shashiranjanraj/kashvi-shop/pkg/collection"
)

func eq(want string) func(string) bool {
	return func(s string) bool { return s == want }
}

func TestMapAndFilter(t *testing.T) {
	in := []string{"apple", "banana", "avocado"}

	assert.Equal(t, []string{"APPLE", "BANANA", "AVOCADO"}, collection.Map(in, strings.ToUpper))
	assert.Equal(t, []string{"apple", "avocado"}, collection.Filter(in, func(s string) bool { return strings.HasPrefix(s, "a") }))
	assert.Nil(t, collection.Filter(in, eq("kiwi")))
}

func TestFirstAndIndex(t *testing.T) {
	in := []string{"a", "b", "b"}

	v, ok := collection.First(in, eq("b"))
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 1, collection.Index(in, eq("b")))

	_, ok = collection.First(in, eq("z"))
	assert.False(t, ok)
	assert.Equal(t, -1, collection.Index(in, eq("z")))
	assert.False(t, collection.Contains(in, eq("z")))
	assert.True(t, collection.Contains(in, eq("a")))
}

func TestRemoveFirst(t *testing.T) {
	in := []string{"x", "y", "x", "z"}

	out, ok := collection.RemoveFirst(in, eq("x"))
	assert.True(t, ok)
	assert.Equal(t, []string{"y", "x", "z"}, out)

	out, ok = collection.RemoveFirst(out, eq("missing"))
	assert.False(t, ok)
	assert.Equal(t, []string{"y", "x", "z"}, out)

	out, ok = collection.RemoveFirst([]string{"only"}, eq("only"))
	assert.True(t, ok)
	assert.Empty(t, out)
}
