package entity

// DiningHall is read-only reference data identified by a stable slug
// (e.g. "de-neve-dining"). Rows are seeded at startup, never created
// through the API.
type DiningHall struct {
	ID          uint   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:text;uniqueIndex;not null" json:"name"`
	DisplayName string `gorm:"type:text;not null" json:"display_name"`

	Dishes []Dish `gorm:"foreignKey:HallID" json:"-"`
	Menus  []Menu `gorm:"foreignKey:HallID" json:"-"`
}

// HallSeeds maps every hall slug to its human label. Seeded into the
// dining_halls table on startup.
var HallSeeds = map[string]string{
	"de-neve-dining":       "De Neve",
	"bruin-cafe":           "Bruin Cafe",
	"bruin-plate":          "Bruin Plate",
	"cafe-1919":            "Cafe 1919",
	"epicuria-at-covel":    "Epicuria",
	"epicuria-at-ackerman": "Epic at Ackerman",
	"rendezvous":           "Rendezvous",
	"the-drey":             "The Drey",
	"spice-kitchen":        "Spice Kitchen at Bruin Bowl",
}
