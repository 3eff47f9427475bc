package entity

// MealPeriod names a serving window valid for a specific hall and date.
// The set of valid periods for a (hall, date) pair is server data, not
// something computed from the wall clock.
type MealPeriod string

const (
	Breakfast   MealPeriod = "BREAKFAST"
	Lunch       MealPeriod = "LUNCH"
	Dinner      MealPeriod = "DINNER"
	AllDay      MealPeriod = "ALL_DAY"
	LunchDinner MealPeriod = "LUNCH_DINNER"
	LateNight   MealPeriod = "LATE_NIGHT"
)

var mealPeriods = map[MealPeriod]bool{
	Breakfast:   true,
	Lunch:       true,
	Dinner:      true,
	AllDay:      true,
	LunchDinner: true,
	LateNight:   true,
}

func (p MealPeriod) Valid() bool {
	return mealPeriods[p]
}
