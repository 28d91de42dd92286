package util

import (
	"strings"
	"unicode"

	gonanoid "github.com/matoous/go-nanoid/v2"
)

// Slugify lowercases a name and replaces runs of non-alphanumeric characters
// with single dashes, e.g. "Riverside Mall (Phase 2)" -> "riverside-mall-phase-2".
func Slugify(name string) string {
	var b strings.Builder
	lastDash := true

	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(b.String(), "-")
}

// SlugWithSuffix appends a short random token, used when a generated slug
// collides with an existing project.
func SlugWithSuffix(slug string) (string, error) {
	suffix, err := gonanoid.Generate("abcdefghijklmnopqrstuvwxyz0123456789", 8)
	if err != nil {
		return "", err
	}
	return slug + "-" + suffix, nil
}
