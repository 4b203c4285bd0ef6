package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteBeforeSaveValidates(t *testing.T) {
	note := Note{UserID: 1, Title: "Morning pages", Content: "slept well"}
	assert.NoError(t, note.BeforeSave(nil))

	missingTitle := Note{UserID: 1, Content: "no title"}
	assert.Error(t, missingTitle.BeforeSave(nil))

	tooLong := Note{UserID: 1, Title: strings.Repeat("x", 256)}
	assert.Error(t, tooLong.BeforeSave(nil))
}
