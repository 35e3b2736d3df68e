package store

import (
	"gorm.io/gorm"

	"studyhub/backend/internal/models"
)

// CreateLobby inserts a new lobby after verifying the owning course exists.
// On a missing course nothing is written.
func (s *Store) CreateLobby(description, location string, maxPeople int, courseID uint) (models.Lobby, error) {
	if description == "" {
		return models.Lobby{}, &ValidationError{Field: "description"}
	}
	if location == "" {
		return models.Lobby{}, &ValidationError{Field: "location"}
	}
	var lobby models.Lobby
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Course{}, "Course", courseID); err != nil {
			return err
		}
		lobby = models.Lobby{
			Description: description,
			Location:    location,
			MaxPeople:   maxPeople,
			CourseID:    courseID,
		}
		return tx.Create(&lobby).Error
	})
	if err != nil {
		return models.Lobby{}, err
	}
	return lobby, nil
}

// GetLobby fetches a lobby by id.
func (s *Store) GetLobby(id uint) (models.Lobby, error) {
	var lobby models.Lobby
	if err := fetch(s.db, &lobby, "Lobby", id); err != nil {
		return models.Lobby{}, err
	}
	return lobby, nil
}

// ListLobbies returns all lobbies in insertion order.
func (s *Store) ListLobbies() ([]models.Lobby, error) {
	var lobbies []models.Lobby
	if err := s.db.Order("id").Find(&lobbies).Error; err != nil {
		return nil, err
	}
	return lobbies, nil
}

// DeleteLobby removes a lobby and its membership rows in one transaction.
func (s *Store) DeleteLobby(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return deleteLobby(tx, id)
	})
}

// deleteLobby is the cascade step shared by DeleteLobby and DeleteCourse;
// it must run inside an open transaction.
func deleteLobby(tx *gorm.DB, id uint) error {
	if err := ensureExists(tx, &models.Lobby{}, "Lobby", id); err != nil {
		return err
	}
	if err := tx.Where("lobby_id = ?", id).Delete(&models.LobbyMembership{}).Error; err != nil {
		return err
	}
	return tx.Delete(&models.Lobby{}, id).Error
}

// AddUserToLobby appends a typed membership row linking the user to the
// lobby. Duplicate rows are allowed; a user may hold several roles in the
// same lobby.
func (s *Store) AddUserToLobby(lobbyID, userID uint, membershipType string) (models.LobbyMembership, error) {
	if membershipType == "" {
		return models.LobbyMembership{}, &ValidationError{Field: "type"}
	}
	var membership models.LobbyMembership
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Lobby{}, "Lobby", lobbyID); err != nil {
			return err
		}
		if err := ensureExists(tx, &models.User{}, "User", userID); err != nil {
			return err
		}
		membership = models.LobbyMembership{
			Type:    membershipType,
			LobbyID: lobbyID,
			UserID:  userID,
		}
		return tx.Create(&membership).Error
	})
	if err != nil {
		return models.LobbyMembership{}, err
	}
	return membership, nil
}
