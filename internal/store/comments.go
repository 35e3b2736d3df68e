package store

import (
	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// CreateComment inserts a new comment after verifying both the parent post
// and the author exist.
func (s *Store) CreateComment(content string, userID, postID uint) (models.Comment, error) {
	if content == "" {
		return models.Comment{}, &ValidationError{Field: "content"}
	}
	var comment models.Comment
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Post{}, "Post", postID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.User{}, "User", userID); err != nil {
			return err
		}
		comment = models.Comment{Content: content, UserID: userID, PostID: postID}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}

// GetComment fetches a comment by id.
func (s *Store) GetComment(id uint) (models.Comment, error) {
	var comment models.Comment
	if err := fetch(s.db, &comment, "Comment", id); err != nil {
		return models.Comment{}, err
	}
	return comment, nil
}
