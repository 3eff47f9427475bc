package entity

import "time"

// Friendship is the symmetric relation created when a request is accepted.
// The lower user ID is always stored first so a pair can't appear twice.
type Friendship struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	FriendID  uint      `gorm:"not null;index" json:"friend_id"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
