package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSliceCardinality(t *testing.T) {
	assert.True(t, IsEmpty([]int(nil)))
	assert.False(t, IsSingle([]int(nil)))
	assert.False(t, IsMultiple([]int(nil)))

	assert.True(t, IsSingle([]string{"a"}))
	assert.False(t, IsMultiple([]string{"a"}))

	assert.True(t, IsMultiple([]string{"a", "b"}))
	assert.False(t, IsEmpty([]string{"a", "b"}))
}
