package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

func newNoteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := db.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	assert.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Mood{},
		&models.Tag{},
		&models.Note{},
		&models.NoteTag{},
	))
	return db
}

func seedNoteUser(t *testing.T, db *gorm.DB) models.User {
	t.Helper()

	user := models.User{ClerkID: "user_notes"}
	assert.NoError(t, db.Create(&user).Error)
	return user
}

func TestNoteListExcludesSoftDeleted(t *testing.T) {
	db := newNoteTestDB(t)
	user := seedNoteUser(t, db)
	repo := NewNoteRepository(db)

	mood, err := models.FindOrCreateMood(db, user.ID, "calm")
	assert.NoError(t, err)

	kept := models.Note{UserID: user.ID, Title: "Kept", Content: "still here", Starred: true, MoodID: &mood.ID}
	assert.NoError(t, repo.Create(&kept))
	assert.NoError(t, repo.ReplaceTags(&kept, []string{"work"}))

	doomed := models.Note{UserID: user.ID, Title: "Doomed", Content: "going away", Starred: true, MoodID: &mood.ID}
	assert.NoError(t, repo.Create(&doomed))
	assert.NoError(t, repo.ReplaceTags(&doomed, []string{"work"}))

	assert.NoError(t, repo.SoftDelete(user.ID, doomed.ID))

	// Gone from detail lookups.
	_, err = repo.GetByID(user.ID, doomed.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Gone from the unfiltered list and from every filter path.
	filters := []NoteFilter{
		{},
		{Starred: true},
		{Tag: "work"},
		{Mood: "calm"},
		{Search: "going"},
	}
	for _, filter := range filters {
		notes, total, err := repo.List(user.ID, filter)
		assert.NoError(t, err)
		for _, note := range notes {
			assert.NotEqual(t, doomed.ID, note.ID, "filter %+v surfaced a deleted note", filter)
		}
		if filter.Search == "going" {
			assert.Zero(t, total)
		} else {
			assert.Equal(t, int64(1), total, "filter %+v", filter)
		}
	}

	// Usage counts only see live notes.
	tags, err := repo.TagsWithCounts(user.ID)
	assert.NoError(t, err)
	assert.Len(t, tags, 1)
	assert.Equal(t, int64(1), tags[0].Count)

	moods, err := repo.MoodsWithCounts(user.ID)
	assert.NoError(t, err)
	assert.Len(t, moods, 1)
	assert.Equal(t, int64(1), moods[0].Count)
}

func TestNoteListUnknownTagOrMoodYieldsEmptyPage(t *testing.T) {
	db := newNoteTestDB(t)
	user := seedNoteUser(t, db)
	repo := NewNoteRepository(db)

	note := models.Note{UserID: user.ID, Title: "Only note", Content: "hello"}
	assert.NoError(t, repo.Create(&note))

	for _, filter := range []NoteFilter{{Tag: "missing"}, {Mood: "missing"}} {
		notes, total, err := repo.List(user.ID, filter)
		assert.NoError(t, err)
		assert.Empty(t, notes)
		assert.Zero(t, total)
	}
}

func TestSoftDeleteUnknownNote(t *testing.T) {
	db := newNoteTestDB(t)
	user := seedNoteUser(t, db)
	repo := NewNoteRepository(db)

	err := repo.SoftDelete(user.ID, 12345)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
