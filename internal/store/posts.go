package store

import (
	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// CreatePost inserts a new post after verifying the author exists.
func (s *Store) CreatePost(title, content string, userID uint) (models.Post, error) {
	if title == "" {
		return models.Post{}, &ValidationError{Field: "title"}
	}
	if content == "" {
		return models.Post{}, &ValidationError{Field: "content"}
	}
	var post models.Post
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, "User", userID); err != nil {
			return err
		}
		post = models.Post{Title: title, Content: content, UserID: userID}
		return tx.Create(&post).Error
	})
	if err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// GetPost fetches a post by id.
func (s *Store) GetPost(id uint) (models.Post, error) {
	var post models.Post
	if err := fetch(s.db, &post, "Post", id); err != nil {
		return models.Post{}, err
	}
	return post, nil
}

// ListPosts returns all posts in insertion order.
func (s *Store) ListPosts() ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// DeletePost removes a post and its comments in one transaction.
func (s *Store) DeletePost(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deletePost(tx, id)
	})
}

// deletePost is the cascade step shared by DeletePost and DeleteUser; it
// must run inside an open transaction.
func deletePost(tx *gorm.DB, id uint) error {
	if err := ensureExists(tx, &models.Post{}, "Post", id); err != nil {
		return err
	}
	if err := tx.Where("post_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Post{}, id).Error
}
