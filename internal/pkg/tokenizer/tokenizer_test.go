package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApproximateCounter(t *testing.T) {
	counter := ApproximateCounter{}

	assert.Equal(t, 0, counter.Count(""))
	assert.Equal(t, 1, counter.Count("hi"))
	assert.Equal(t, 1, counter.Count("four"))
	assert.Equal(t, 2, counter.Count("hello"))
	assert.Equal(t, 4, counter.Count("sixteen chars ok"))
}
