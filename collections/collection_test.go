package collections_test

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-collection-utils/collections"
)

func TestNewListCopies(t *testing.T) {
	src := []int{1, 2, 3}
	l := collections.NewList(src...)
	src[0] = 99
	assert.Equal(t, []int{1, 2, 3}, l.Items())
}

func TestListOfAliases(t *testing.T) {
	src := []int{1, 2, 3}
	l := collections.ListOf(src)
	src[0] = 99
	assert.Equal(t, 99, l.Items()[0])
}

func TestListZeroValue(t *testing.T) {
	var l collections.List[string]
	assert.Equal(t, 0, l.Len())
	l.Add("a")
	l.Add("b")
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, []string{"a", "b"}, slices.Collect(l.All()))
}

func TestNilListIsEmpty(t *testing.T) {
	var l *collections.List[int]
	assert.Equal(t, 0, l.Len())
	assert.Nil(t, l.Items())
	assert.Empty(t, slices.Collect(l.All()))
	assert.Equal(t, "[]", l.String())
}

func TestListAllStopsEarly(t *testing.T) {
	l := collections.NewList(1, 2, 3, 4)
	var seen []int
	for v := range l.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{1, 2}, seen)
}

func TestListString(t *testing.T) {
	l := collections.NewList(1, 2, 3)
	assert.Equal(t, "[1 2 3]", l.String())
	assert.Equal(t, fmt.Sprint([]int{1, 2, 3}), fmt.Sprint(l))
}

func TestListImplementsCollection(t *testing.T) {
	var c collections.Collection[int] = collections.NewList[int]()
	require.NotNil(t, c)
	c.Add(7)
	assert.Equal(t, 1, c.Len())
}
