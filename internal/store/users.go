package store

import (
	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// CreateUser inserts a new user with a store-assigned id.
func (s *Store) CreateUser(name string) (models.User, error) {
	if name == "" {
		return models.User{}, &ValidationError{Field: "name"}
	}
	user := models.User{Name: name}
	if err := s.db.Create(&user).Error; err != nil {
		return models.User{}, err
	}
	return user, nil
}

// GetUser fetches a user by id.
func (s *Store) GetUser(id uint) (models.User, error) {
	var user models.User
	if err := fetch(s.db, &user, "User", id); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// ListUsers returns all users in insertion order.
func (s *Store) ListUsers() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes a user together with everything it owns: posts (and
// thereby their comments), comments on other users' posts, lobby
// memberships, and course enrollment rows. The whole cascade commits or
// rolls back as one transaction.
func (s *Store) DeleteUser(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := fetch(tx, &user, "User", id); err != nil {
			return err
		}
		var posts []models.Post
		if err := tx.Where("user_id = ?", id).Order("id").Find(&posts).Error; err != nil {
			return err
		}
		for _, post := range posts {
			if err := deletePost(tx, post.ID); err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.LobbyMembership{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&user).Association("Courses").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.User{}, id).Error
	})
}
