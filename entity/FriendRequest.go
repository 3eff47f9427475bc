package entity

import "time"

const (
	FriendRequestPending = "pending"
)

// FriendRequest is a directed edge between two users. Accepting one
// materializes a Friendship row and deletes the request.
type FriendRequest struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FromID    uint      `gorm:"not null;index" json:"from_id"`
	ToID      uint      `gorm:"not null;index" json:"to_id"`
	Status    string    `gorm:"type:text;not null;default:'pending'" json:"status"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	FromUser  User      `gorm:"foreignKey:FromID" json:"from_user,omitempty"`
	ToUser    User      `gorm:"foreignKey:ToID" json:"to_user,omitempty"`
}
