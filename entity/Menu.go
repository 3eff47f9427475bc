package entity

// Menu is the set of dishes served at one hall for one (date, meal period).
type Menu struct {
	ID     uint       `gorm:"primaryKey;autoIncrement" json:"id"`
	HallID uint       `gorm:"not null;index" json:"hall_id"`
	Hall   DiningHall `gorm:"foreignKey:HallID" json:"hall"`
	Date   MenuDate   `gorm:"embedded;embeddedPrefix:date_" json:"date"`
	Dishes []Dish     `gorm:"many2many:menu_dishes" json:"dishes,omitempty"`
}
