// internal/utils/pagination_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0))
	assert.Equal(t, 1, ClampPage(-5))
	assert.Equal(t, 1, ClampPage(1))
	assert.Equal(t, 42, ClampPage(42))
}

func TestClampLimit(t *testing.T) {
	assert.Equal(t, 10, ClampLimit(0), "zero means unset and takes the default")
	assert.Equal(t, 1, ClampLimit(-3))
	assert.Equal(t, 1, ClampLimit(1))
	assert.Equal(t, 100, ClampLimit(100))
	assert.Equal(t, 100, ClampLimit(500))
	assert.Equal(t, 25, ClampLimit(25))
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(1, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 2, TotalPages(11, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 0, TotalPages(25, 0), "degenerate limit yields zero pages")
}
