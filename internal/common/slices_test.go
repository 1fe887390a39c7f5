package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairs(t *testing.T) {
	pairs, ok := Pairs([]uint64{79, 14, 55, 13})
	assert.True(t, ok)
	assert.Equal(t, [][2]uint64{{79, 14}, {55, 13}}, pairs)

	pairs, ok = Pairs([]uint64{1, 2, 3})
	assert.False(t, ok)
	assert.Equal(t, [][2]uint64{{1, 2}}, pairs)

	pairs, ok = Pairs([]uint64(nil))
	assert.True(t, ok)
	assert.Empty(t, pairs)
}
