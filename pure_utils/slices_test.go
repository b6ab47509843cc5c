package pure_utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUniq(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Uniq([]int{3, 1, 3, 2, 1}))
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []int{2, 4}, Filter([]int{1, 2, 3, 4}, func(i int) bool { return i%2 == 0 }))
}

func TestGroupBy(t *testing.T) {
	grouped := GroupBy([]string{"apple", "avocado", "banana"}, func(s string) byte { return s[0] })
	assert.Equal(t, []string{"apple", "avocado"}, grouped['a'])
	assert.Equal(t, []string{"banana"}, grouped['b'])
}
