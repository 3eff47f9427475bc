package entity

import "time"

// Rating is one user's score for one dish. Ratings are created once;
// there is no edit or delete surface.
type Rating struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user"`
	DishID    uint      `gorm:"not null;index" json:"dish_id"`
	Dish      Dish      `gorm:"foreignKey:DishID" json:"dish"`
	Score     int       `gorm:"type:smallint;not null;check:score >= 1 AND score <= 5" json:"score"`
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}
