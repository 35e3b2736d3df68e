package models

import "time"

// Conventional membership types. The column is a free-form string, not an
// enforced enum; rows with any other value are invisible to both the owner
// and user scans.
const (
	MembershipTypeOwner = "owner"
	MembershipTypeUser  = "user"
)

// LobbyMembership is the typed join row linking a User to a Lobby. Role
// information lives only here; a lobby carries no owner column of its own.
type LobbyMembership struct {
	ID        uint   `gorm:"primaryKey"`
	Type      string `gorm:"size:50;not null"`
	LobbyID   uint   `gorm:"not null;index"`
	UserID    uint   `gorm:"not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Lobby Lobby `gorm:"foreignKey:LobbyID"`
	User  User  `gorm:"foreignKey:UserID"`
}
