package access

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecker_IsAdmin(t *testing.T) {
	checker := NewChecker([]int64{10, 20})

	assert.True(t, checker.IsAdmin(10))
	assert.True(t, checker.IsAdmin(20))
	assert.False(t, checker.IsAdmin(30))

	var empty *Checker
	assert.False(t, empty.IsAdmin(10))
}
