package models

import "time"

// User represents a member of the study platform.
type User struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:255;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Courses []*Course `gorm:"many2many:course_users;"`
}
