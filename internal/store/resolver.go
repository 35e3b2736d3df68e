package store

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// Derived relations are recomputed by scanning join and foreign-key rows on
// every call; nothing is denormalized onto the entities themselves. A
// foreign key that no longer resolves is a ConsistencyError, never a silent
// skip: membership rows must not outlive the rows they point at.

// LobbiesForUser returns the lobbies a user belongs to, in membership
// insertion order. A user holding several roles in one lobby yields that
// lobby once per membership row.
func (s *Store) LobbiesForUser(userID uint) ([]models.Lobby, error) {
	var memberships []models.LobbyMembership
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&memberships).Error; err != nil {
		return nil, err
	}
	lobbies := make([]models.Lobby, 0, len(memberships))
	for _, m := range memberships {
		var lobby models.Lobby
		if err := s.db.First(&lobby, m.LobbyID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ConsistencyError{
					Detail: fmt.Sprintf("membership %d references missing lobby %d", m.ID, m.LobbyID),
				}
			}
			return nil, err
		}
		lobbies = append(lobbies, lobby)
	}
	return lobbies, nil
}

// UsersInLobbyByType returns the users holding the given membership type in
// a lobby, in membership insertion order. The owner and user lists are two
// independent scans; rows with any other type value appear in neither.
func (s *Store) UsersInLobbyByType(lobbyID uint, membershipType string) ([]models.User, error) {
	var memberships []models.LobbyMembership
	err := s.db.Where("lobby_id = ? AND type = ?", lobbyID, membershipType).Order("id").Find(&memberships).Error
	if err != nil {
		return nil, err
	}
	users := make([]models.User, 0, len(memberships))
	for _, m := range memberships {
		var user models.User
		if err := s.db.First(&user, m.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, &ConsistencyError{
					Detail: fmt.Sprintf("membership %d references missing user %d", m.ID, m.UserID),
				}
			}
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CoursesForUser returns the courses a user is enrolled in.
func (s *Store) CoursesForUser(userID uint) ([]models.Course, error) {
	var courses []models.Course
	err := s.db.
		Joins("JOIN course_users cu ON cu.course_id = courses.id").
		Where("cu.user_id = ?", userID).
		Order("courses.id").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}
	return courses, nil
}

// UsersInCourse returns the users enrolled in a course.
func (s *Store) UsersInCourse(courseID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN course_users cu ON cu.user_id = users.id").
		Where("cu.course_id = ?", courseID).
		Order("users.id").
		Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// LobbiesForCourse returns the lobbies owned by a course, in insertion order.
func (s *Store) LobbiesForCourse(courseID uint) ([]models.Lobby, error) {
	var lobbies []models.Lobby
	if err := s.db.Where("course_id = ?", courseID).Order("id").Find(&lobbies).Error; err != nil {
		return nil, err
	}
	return lobbies, nil
}

// PostsForUser returns the posts authored by a user, in insertion order.
func (s *Store) PostsForUser(userID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// CommentsForUser returns the comments authored by a user, in insertion order.
func (s *Store) CommentsForUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("user_id = ?", userID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

// CommentsForPost returns the comments under a post, in insertion order.
func (s *Store) CommentsForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("post_id = ?", postID).Order("id").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
