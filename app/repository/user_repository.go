package repository

import (
	"gorm.io/gorm"

	"github.com/sayit-app/sayit-api/app/models"
)

// userRepository implements the UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository instance
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create creates a new user in the database
func (r *userRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// GetByID retrieves a user by their local ID
func (r *userRepository) GetByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByClerkID resolves an external identity to the local user row
func (r *userRepository) GetByClerkID(clerkID string) (*models.User, error) {
	var user models.User
	err := r.db.Where("clerk_id = ?", clerkID).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteByClerkID removes the local mirror row. Owned resources go with it
// via the ON DELETE CASCADE constraints in the schema.
func (r *userRepository) DeleteByClerkID(clerkID string) error {
	return r.db.Where("clerk_id = ?", clerkID).Delete(&models.User{}).Error
}
