package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsonntag/bruinbite/entity"
)

func TestMealPeriodsFor(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)
	hall := seedHall(t, db, "de-neve-dining", "De Neve")
	otherHall := seedHall(t, db, "bruin-plate", "Bruin Plate")

	date := entity.MenuDate{Day: 1, Month: 3, Year: 2024}
	for _, period := range []string{"LUNCH", "DINNER"} {
		d := date
		d.MealPeriod = period
		require.NoError(t, repo.Create(&entity.Menu{HallID: hall.ID, Date: d}))
	}
	// another hall the same day must not leak in
	other := date
	other.MealPeriod = "BREAKFAST"
	require.NoError(t, repo.Create(&entity.Menu{HallID: otherHall.ID, Date: other}))

	periods, err := repo.MealPeriodsFor("de-neve-dining", date)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"LUNCH", "DINNER"}, periods)

	empty, err := repo.MealPeriodsFor("de-neve-dining", entity.MenuDate{Day: 2, Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.Empty(t, empty, "a day with no menus resolves to no periods")
}

func TestFindByHallSlugAndDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewMenuRepository(db)
	hall := seedHall(t, db, "epicuria-at-covel", "Epicuria")
	pasta := seedDish(t, db, hall.ID, "Pesto Pasta")
	pizza := seedDish(t, db, hall.ID, "Margherita Pizza")

	date := entity.MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: "DINNER"}
	require.NoError(t, repo.Create(&entity.Menu{
		HallID: hall.ID,
		Date:   date,
		Dishes: []entity.Dish{pasta, pizza},
	}))

	menu, err := repo.FindByHallSlugAndDate("epicuria-at-covel", date)
	require.NoError(t, err)
	assert.Equal(t, "Epicuria", menu.Hall.DisplayName)
	assert.Len(t, menu.Dishes, 2)

	_, err = repo.FindByHallSlugAndDate("epicuria-at-covel",
		entity.MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: "LUNCH"})
	assert.Error(t, err, "wrong meal period finds nothing")
}

func TestDishGetOrCreate(t *testing.T) {
	db := newTestDB(t)
	repo := NewDishRepository(db)
	hall := seedHall(t, db, "spice-kitchen", "Spice Kitchen at Bruin Bowl")

	march := entity.MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: "LUNCH"}
	created, err := repo.GetOrCreate("Chicken Tikka", hall.ID, "Curry Station", march)
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Curry Station", created.Location)

	// same dish sighted later: same row, refreshed last-seen
	april := entity.MenuDate{Day: 2, Month: 4, Year: 2024, MealPeriod: "DINNER"}
	again, err := repo.GetOrCreate("Chicken Tikka", hall.ID, "Curry Station", april)
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)

	var got entity.Dish
	require.NoError(t, db.First(&got, created.ID).Error)
	assert.Equal(t, 4, got.LastSeen.Month)
}
