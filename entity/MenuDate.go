package entity

// MenuDate is a calendar date plus meal period, stored as plain integer
// columns so menu lookups never have to normalize a time.Time. Embedded
// with a prefix, so GORM creates columns like date_day, date_meal_period.
type MenuDate struct {
	Day        int    `gorm:"column:day;not null" json:"day"`
	Month      int    `gorm:"column:month;not null" json:"month"`
	Year       int    `gorm:"column:year;not null" json:"year"`
	MealPeriod string `gorm:"column:meal_period;type:text" json:"meal_period,omitempty"`
}

func periodRank(p string) int {
	switch MealPeriod(p) {
	case Breakfast:
		return 1
	case Lunch:
		return 2
	case Dinner:
		return 3
	default:
		return 0
	}
}

// After reports whether d is on or after other, ordering same-day dates
// by meal period (breakfast < lunch < dinner).
func (d MenuDate) After(other MenuDate) bool {
	if d.Year != other.Year {
		return d.Year > other.Year
	}
	if d.Month != other.Month {
		return d.Month > other.Month
	}
	if d.Day != other.Day {
		return d.Day > other.Day
	}
	return periodRank(d.MealPeriod) >= periodRank(other.MealPeriod)
}
