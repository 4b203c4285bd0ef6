package repository

import (
	"github.com/sayit-app/sayit-api/app/models"
)

// NoteFilter collects the optional, conjunctive filters of the notes list
// endpoint. Zero values mean "not filtered".
type NoteFilter struct {
	Starred bool
	Tag     string
	Mood    string
	Search  string
	Limit   int
	Offset  int
}

// TagWithCount is a tag name plus the number of live (non-deleted) notes
// carrying it.
type TagWithCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// MoodWithCount is a mood name plus the number of live notes referencing it.
type MoodWithCount struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uint) (*models.User, error)
	GetByClerkID(clerkID string) (*models.User, error)
	DeleteByClerkID(clerkID string) error
}

// NoteRepository defines the interface for note-related database operations.
// Soft-deleted notes never surface from any of these methods.
type NoteRepository interface {
	Create(note *models.Note) error
	GetByID(userID, id uint) (*models.Note, error)
	List(userID uint, filter NoteFilter) ([]models.Note, int64, error)
	Update(note *models.Note) error
	SoftDelete(userID, id uint) error
	ReplaceTags(note *models.Note, tagNames []string) error
	TagsWithCounts(userID uint) ([]TagWithCount, error)
	MoodsWithCounts(userID uint) ([]MoodWithCount, error)
}

// ChatRepository defines the interface for chat-thread database operations.
type ChatRepository interface {
	Create(chat *models.AiChat) error
	GetByID(userID, id uint) (*models.AiChat, error)
	GetWithMessages(userID, id uint) (*models.AiChat, []models.AiMessage, error)
	ListByUser(userID uint) ([]models.AiChat, error)
	Update(chat *models.AiChat) error
	SoftDelete(userID, id uint) error
}

// BillingRepository defines read access to the billing catalog and per-user
// billing state. Writes happen inside the webhook settlement transaction.
type BillingRepository interface {
	ActivePlansWithPrices() ([]models.BillingPlan, error)
	HistoryByUser(userID uint) ([]models.BillingHistory, error)
	GetPriceWithPlan(priceID uint) (*models.Price, error)
	SubscriptionWithPlanByUser(userID uint) (*models.Subscription, error)
}
