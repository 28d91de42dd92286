package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ujenziiq/ujenziiq-go/internal/constant"
)

func TestCalculateTotalPage(t *testing.T) {
	assert.Equal(t, 1, CalculateTotalPage(0, 25))
	assert.Equal(t, 1, CalculateTotalPage(25, 25))
	assert.Equal(t, 2, CalculateTotalPage(26, 25))
	assert.Equal(t, 4, CalculateTotalPage(100, 30))

	// zero page size falls back to the default
	assert.Equal(t, 2, CalculateTotalPage(constant.DefaultPageSize+1, 0))
}

func TestNormalizePage(t *testing.T) {
	page, pageSize := NormalizePage(0, 0)
	assert.Equal(t, uint(1), page)
	assert.Equal(t, uint(constant.DefaultPageSize), pageSize)

	page, pageSize = NormalizePage(3, 50)
	assert.Equal(t, uint(3), page)
	assert.Equal(t, uint(50), pageSize)

	_, pageSize = NormalizePage(1, constant.MaxPageSize+500)
	assert.Equal(t, uint(constant.MaxPageSize), pageSize)
}
