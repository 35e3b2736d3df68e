package models

import "time"

// Lobby represents a course-scoped study session where users can gather.
type Lobby struct {
	ID          uint   `gorm:"primaryKey"`
	Description string `gorm:"not null"`
	Location    string `gorm:"size:255;not null"`
	// MaxPeople is a capacity hint only; nothing checks it against the
	// actual membership count.
	MaxPeople int  `gorm:"not null"`
	CourseID  uint `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Course Course `gorm:"foreignKey:CourseID"`
}
