package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	assert.Equal(t, "riverside-mall-phase-2", Slugify("Riverside Mall (Phase 2)"))
	assert.Equal(t, "dar-bridge", Slugify("  Dar   Bridge  "))
	assert.Equal(t, "a1b2", Slugify("a1b2"))
	assert.Equal(t, "", Slugify("!!!"))
}

func TestSlugWithSuffix(t *testing.T) {
	slug, err := SlugWithSuffix("riverside-mall")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(slug, "riverside-mall-"))
	assert.Len(t, slug, len("riverside-mall-")+8)

	other, err := SlugWithSuffix("riverside-mall")
	require.NoError(t, err)
	assert.NotEqual(t, slug, other)
}

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-pass", hash)

	assert.True(t, ComparePassword(hash, "s3cret-pass"))
	assert.False(t, ComparePassword(hash, "wrong-pass"))
}
