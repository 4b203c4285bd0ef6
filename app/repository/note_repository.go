package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

// noteRepository implements the NoteRepository interface
type noteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository instance
func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

// Create inserts the note together with any pre-attached tag associations.
func (r *noteRepository) Create(note *models.Note) error {
	return r.db.Create(note).Error
}

// GetByID retrieves a live note owned by the user, tags and mood included.
func (r *noteRepository) GetByID(userID, id uint) (*models.Note, error) {
	var note models.Note
	err := r.db.Preload("Tags").Preload("Mood").
		Where("user_id = ?", userID).
		First(&note, id).Error
	if err != nil {
		return nil, err
	}
	return &note, nil
}

// List applies the conjunctive filter set and returns one page plus the
// total match count (ignoring pagination). A tag or mood name the user does
// not have yields an empty page with total 0, not an error.
func (r *noteRepository) List(userID uint, filter NoteFilter) ([]models.Note, int64, error) {
	query := r.db.Model(&models.Note{}).Where("user_id = ?", userID)

	if filter.Starred {
		query = query.Where("starred = ?", true)
	}

	if filter.Mood != "" {
		var mood models.Mood
		err := r.db.Where("user_id = ? AND name = ?", userID, filter.Mood).First(&mood).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Note{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}
		query = query.Where("mood_id = ?", mood.ID)
	}

	if filter.Tag != "" {
		var tag models.Tag
		err := r.db.Where("user_id = ? AND name = ?", userID, filter.Tag).First(&tag).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return []models.Note{}, 0, nil
		}
		if err != nil {
			return nil, 0, err
		}

		var noteIDs []uint
		if err := r.db.Model(&models.NoteTag{}).Where("tag_id = ?", tag.ID).Pluck("note_id", &noteIDs).Error; err != nil {
			return nil, 0, err
		}
		if len(noteIDs) == 0 {
			return []models.Note{}, 0, nil
		}
		query = query.Where("id IN ?", noteIDs)
	}

	if filter.Search != "" {
		// Case-insensitive via the column collation.
		pattern := "%" + filter.Search + "%"
		query = query.Where("title LIKE ? OR content LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}

	var notes []models.Note
	err := query.Preload("Tags").Preload("Mood").
		Order("updated_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&notes).Error
	if err != nil {
		return nil, 0, err
	}
	return notes, total, nil
}

// Update saves scalar fields of the note.
func (r *noteRepository) Update(note *models.Note) error {
	return r.db.Omit("Tags", "Mood").Save(note).Error
}

// SoftDelete marks a live note as deleted.
func (r *noteRepository) SoftDelete(userID, id uint) error {
	result := r.db.Where("user_id = ?", userID).Delete(&models.Note{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceTags swaps the note's tag set for the given names, creating tags
// lazily per owner.
func (r *noteRepository) ReplaceTags(note *models.Note, tagNames []string) error {
	tags := make([]models.Tag, 0, len(tagNames))
	for _, name := range tagNames {
		tag, err := models.FindOrCreateTag(r.db, note.UserID, name)
		if err != nil {
			return err
		}
		tags = append(tags, *tag)
	}

	if err := r.db.Model(note).Association("Tags").Replace(tags); err != nil {
		return err
	}
	note.Tags = tags
	return nil
}

// TagsWithCounts lists the user's tags with their live-note usage counts.
func (r *noteRepository) TagsWithCounts(userID uint) ([]TagWithCount, error) {
	var tags []TagWithCount
	err := r.db.Model(&models.Tag{}).
		Select("tags.id, tags.name, COUNT(notes.id) AS count").
		Joins("LEFT JOIN note_tags ON note_tags.tag_id = tags.id").
		Joins("LEFT JOIN notes ON notes.id = note_tags.note_id AND notes.deleted_at IS NULL").
		Where("tags.user_id = ?", userID).
		Group("tags.id, tags.name").
		Scan(&tags).Error
	return tags, err
}

// MoodsWithCounts lists the user's moods with their live-note usage counts.
func (r *noteRepository) MoodsWithCounts(userID uint) ([]MoodWithCount, error) {
	var moods []MoodWithCount
	err := r.db.Model(&models.Mood{}).
		Select("moods.id, moods.name, COUNT(notes.id) AS count").
		Joins("LEFT JOIN notes ON notes.mood_id = moods.id AND notes.deleted_at IS NULL").
		Where("moods.user_id = ?", userID).
		Group("moods.id, moods.name").
		Scan(&moods).Error
	return moods, err
}
