package entity

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Username       string  `gorm:"type:text;uniqueIndex;not null" json:"username"`
	HashedPassword string  `gorm:"type:text;not null" json:"-"`
	Email          string  `gorm:"type:text;uniqueIndex;not null" json:"email"`
	IsAdmin        bool    `gorm:"not null;default:false" json:"is_admin"`
	ProfilePicture *string `gorm:"type:text" json:"profile_picture,omitempty"`

	// Preload only when needed
	Ratings                []Rating        `gorm:"foreignKey:UserID" json:"-"`
	FriendRequestsSent     []FriendRequest `gorm:"foreignKey:FromID" json:"-"`
	FriendRequestsReceived []FriendRequest `gorm:"foreignKey:ToID" json:"-"`
}
