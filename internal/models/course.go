package models

import "time"

// Course represents a course that users enroll in and lobbies belong to.
type Course struct {
	ID        uint   `gorm:"primaryKey"`
	Code      string `gorm:"size:10;not null"`
	Name      string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Users   []*User `gorm:"many2many:course_users;"`
	Lobbies []Lobby `gorm:"foreignKey:CourseID"`
}
