package entity

// Dish is a menu item offered at one location (sub-station) within a hall.
// AverageRating is maintained by the rating repository; 0 means no ratings.
type Dish struct {
	ID            uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	HallID        uint       `gorm:"not null;index:idx_dish_hall_name,unique" json:"hall_id"`
	Hall          DiningHall `gorm:"foreignKey:HallID" json:"-"`
	Name          string     `gorm:"type:text;not null;index:idx_dish_hall_name,unique" json:"name"`
	Description   *string    `gorm:"type:text" json:"description,omitempty"`
	Location      string     `gorm:"type:text" json:"location"`
	AverageRating float64    `gorm:"not null;default:0" json:"average_rating"`
	LastSeen      MenuDate   `gorm:"embedded;embeddedPrefix:last_seen_" json:"last_seen_date"`

	Ratings []Rating `gorm:"foreignKey:DishID" json:"-"`
}
