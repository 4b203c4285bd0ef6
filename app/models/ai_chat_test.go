package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncatePreview(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{name: "empty", content: "", want: ""},
		{name: "short passes through", content: "hello there", want: "hello there"},
		{name: "exactly the limit", content: strings.Repeat("a", ChatPreviewLength), want: strings.Repeat("a", ChatPreviewLength)},
		{name: "over the limit is cut", content: strings.Repeat("b", ChatPreviewLength+40), want: strings.Repeat("b", ChatPreviewLength)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TruncatePreview(tt.content))
		})
	}
}

func TestTruncatePreviewMultibyte(t *testing.T) {
	content := strings.Repeat("ü", ChatPreviewLength+10)
	got := TruncatePreview(content)
	assert.Equal(t, ChatPreviewLength, len([]rune(got)))
}
