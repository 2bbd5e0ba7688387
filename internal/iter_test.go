package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIter(t *testing.T) {
	assert := assert.New(t)

	seq := Concat(slices.Values([]int{1, 2}), slices.Values([]int(nil)), slices.Values([]int{3}))
	assert.Equal([]int{1, 2, 3}, slices.Collect(seq))

	assert.Equal(map[int]string{0: "a", 1: "b"}, maps.Collect(Enumerate(slices.Values([]string{"a", "b"}))))

	odd := Filter(seq, func(n int) bool { return n%2 == 1 })
	assert.Equal([]int{1, 3}, slices.Collect(odd))

	// Early stop.
	for n := range Concat(slices.Values([]int{1, 2}), slices.Values([]int{3})) {
		if n == 2 {
			break
		}
	}
}
