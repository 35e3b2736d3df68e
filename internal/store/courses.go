package store

import (
	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// CreateCourse inserts a new course with a store-assigned id.
func (s *Store) CreateCourse(code, name string) (models.Course, error) {
	if code == "" {
		return models.Course{}, &ValidationError{Field: "code"}
	}
	if name == "" {
		return models.Course{}, &ValidationError{Field: "name"}
	}
	course := models.Course{Code: code, Name: name}
	if err := s.db.Create(&course).Error; err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// GetCourse fetches a course by id.
func (s *Store) GetCourse(id uint) (models.Course, error) {
	var course models.Course
	if err := fetch(s.db, &course, "Course", id); err != nil {
		return models.Course{}, err
	}
	return course, nil
}

// ListCourses returns all courses in insertion order.
func (s *Store) ListCourses() ([]models.Course, error) {
	var courses []models.Course
	if err := s.db.Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// DeleteCourse removes a course, its lobbies, and transitively the
// membership rows of those lobbies, plus the course's enrollment rows.
// Enrolled users themselves are untouched. The whole cascade commits or
// rolls back as one transaction.
func (s *Store) DeleteCourse(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := fetch(tx, &course, "Course", id); err != nil {
			return err
		}
		var lobbies []models.Lobby
		if err := tx.Where("course_id = ?", id).Order("id").Find(&lobbies).Error; err != nil {
			return err
		}
		for _, lobby := range lobbies {
			if err := deleteLobby(tx, lobby.ID); err != nil {
				return err
			}
		}
		if err := tx.Model(&course).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(&models.Course{}, id).Error
	})
}

// AddUserToCourse enrolls a user in a course. Enrolling an already-enrolled
// user is a no-op: the join table keys on (course_id, user_id), so repeated
// calls leave a single association row.
func (s *Store) AddUserToCourse(courseID, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var course models.Course
		if err := fetch(tx, &course, "Course", courseID); err != nil {
			return err
		}
		var user models.User
		if err := fetch(tx, &user, "User", userID); err != nil {
			return err
		}
		return tx.Model(&course).Association("Users").Append(&user)
	})
}
