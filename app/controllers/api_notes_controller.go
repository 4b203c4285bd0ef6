package controllers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
	"github.com/sayit-app/sayit-api/app/repository"
	"github.com/sayit-app/sayit-api/internal/pkg/database"
)

type noteRequest struct {
	Title   *string  `json:"title"`
	Content *string  `json:"content"`
	Mood    *string  `json:"mood"`
	Tags    []string `json:"tags"`
	Starred *bool    `json:"starred"`
}

// HandleListNotes returns one page of the user's live notes. All query
// filters are optional and conjunctive; a tag or mood name the user does
// not have yields an empty page rather than an error.
func HandleListNotes(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	filter := repository.NoteFilter{
		Starred: c.Query("starred") == "true",
		Tag:     c.Query("tag"),
		Mood:    c.Query("mood"),
		Search:  c.Query("search"),
		Limit:   c.QueryInt("limit", 20),
		Offset:  c.QueryInt("offset", 0),
	}

	notes, total, err := repository.GetGlobalFactory().GetNoteRepository().List(userID, filter)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load notes")
	}

	return c.JSON(fiber.Map{
		"notes": notes,
		"count": len(notes),
		"total": total,
	})
}

// HandleGetNote returns a single live note with tags and mood.
func HandleGetNote(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	note, err := repository.GetGlobalFactory().GetNoteRepository().GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	return c.JSON(note)
}

// HandleCreateNote creates a note. Mood and tags are referenced by name and
// created lazily for the owner when missing.
func HandleCreateNote(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		return jsonError(c, fiber.StatusBadRequest, "Title is required")
	}

	note := models.Note{
		UserID: userID,
		Title:  strings.TrimSpace(*req.Title),
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Starred != nil {
		note.Starred = *req.Starred
	}

	db := database.GetDB()
	if req.Mood != nil && strings.TrimSpace(*req.Mood) != "" {
		mood, err := models.FindOrCreateMood(db, userID, strings.TrimSpace(*req.Mood))
		if err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Failed to resolve mood")
		}
		note.MoodID = &mood.ID
	}

	repo := repository.GetGlobalFactory().GetNoteRepository()
	if err := repo.Create(&note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to create note")
	}

	if len(req.Tags) > 0 {
		if err := repo.ReplaceTags(&note, req.Tags); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Failed to attach tags")
		}
	}

	created, err := repo.GetByID(userID, note.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateNote updates the fields present in the body. Sending tags
// replaces the full tag set; sending an empty mood string detaches the mood.
func HandleUpdateNote(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req noteRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	repo := repository.GetGlobalFactory().GetNoteRepository()
	note, err := repo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return jsonError(c, fiber.StatusBadRequest, "Title is required")
		}
		note.Title = strings.TrimSpace(*req.Title)
	}
	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.Starred != nil {
		note.Starred = *req.Starred
	}
	if req.Mood != nil {
		name := strings.TrimSpace(*req.Mood)
		if name == "" {
			note.MoodID = nil
		} else {
			mood, err := models.FindOrCreateMood(database.GetDB(), userID, name)
			if err != nil {
				return jsonError(c, fiber.StatusInternalServerError, "Failed to resolve mood")
			}
			note.MoodID = &mood.ID
		}
	}

	if err := repo.Update(note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update note")
	}

	if req.Tags != nil {
		if err := repo.ReplaceTags(note, req.Tags); err != nil {
			return jsonError(c, fiber.StatusInternalServerError, "Failed to attach tags")
		}
	}

	updated, err := repo.GetByID(userID, note.ID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	return c.JSON(updated)
}

// HandleDeleteNote soft-deletes a note.
func HandleDeleteNote(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	err := repository.GetGlobalFactory().GetNoteRepository().SoftDelete(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to delete note")
	}

	return c.JSON(fiber.Map{"message": "Note deleted"})
}

// HandleToggleNoteStar flips the star flag, or sets it when the body names
// an explicit value.
func HandleToggleNoteStar(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return nil
	}

	var req struct {
		Starred *bool `json:"starred"`
	}
	// An empty body means toggle.
	_ = c.BodyParser(&req)

	repo := repository.GetGlobalFactory().GetNoteRepository()
	note, err := repo.GetByID(userID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return jsonError(c, fiber.StatusNotFound, "Note not found")
		}
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load note")
	}

	if req.Starred != nil {
		note.Starred = *req.Starred
	} else {
		note.Starred = !note.Starred
	}

	if err := repo.Update(note); err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to update note")
	}

	return c.JSON(note)
}

// HandleListNoteTags returns the user's tags with live-note usage counts.
func HandleListNoteTags(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	tags, err := repository.GetGlobalFactory().GetNoteRepository().TagsWithCounts(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load tags")
	}

	return c.JSON(fiber.Map{"tags": tags})
}

// HandleListNoteMoods returns the user's moods with live-note usage counts.
func HandleListNoteMoods(c *fiber.Ctx) error {
	userID, ok := requireUser(c)
	if !ok {
		return nil
	}

	moods, err := repository.GetGlobalFactory().GetNoteRepository().MoodsWithCounts(userID)
	if err != nil {
		return jsonError(c, fiber.StatusInternalServerError, "Failed to load moods")
	}

	return c.JSON(fiber.Map{"moods": moods})
}
