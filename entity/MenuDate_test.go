package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMealPeriodValid(t *testing.T) {
	for _, p := range []MealPeriod{Breakfast, Lunch, Dinner, AllDay, LunchDinner, LateNight} {
		assert.True(t, p.Valid(), string(p))
	}
	assert.False(t, MealPeriod("BRUNCH").Valid())
	assert.False(t, MealPeriod("").Valid())
}

func TestMenuDateAfter(t *testing.T) {
	lunch := MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: string(Lunch)}

	assert.True(t, MenuDate{Day: 2, Month: 3, Year: 2024}.After(lunch))
	assert.True(t, MenuDate{Day: 1, Month: 4, Year: 2024}.After(lunch))
	assert.True(t, MenuDate{Day: 1, Month: 1, Year: 2025}.After(lunch))
	assert.False(t, MenuDate{Day: 29, Month: 2, Year: 2024}.After(lunch))

	// same day orders by meal period
	dinner := MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: string(Dinner)}
	breakfast := MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: string(Breakfast)}
	assert.True(t, dinner.After(lunch))
	assert.False(t, breakfast.After(lunch))
	assert.True(t, lunch.After(lunch), "same instant counts as on-or-after")
}
