package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateReadableUsername(t *testing.T) {
	shape := regexp.MustCompile(`^[a-z]+-[a-z]+-\d{6}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		name := GenerateReadableUsername()
		assert.Regexp(t, shape, name)
		seen[name] = true
	}

	// Not a uniqueness guarantee, but 50 draws from the full space should
	// not all collide.
	assert.Greater(t, len(seen), 1)
}
