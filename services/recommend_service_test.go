package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

func TestAllowedPeriodsAt(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 3, 1, hour, 30, 0, 0, time.UTC)
	}

	assert.ElementsMatch(t, []string{"BREAKFAST", "ALL_DAY"}, AllowedPeriodsAt(at(8)))
	assert.ElementsMatch(t, []string{"LUNCH", "ALL_DAY", "LUNCH_DINNER"}, AllowedPeriodsAt(at(12)))
	assert.ElementsMatch(t, []string{"DINNER", "ALL_DAY", "LUNCH_DINNER"}, AllowedPeriodsAt(at(19)))
	assert.ElementsMatch(t, []string{"LATE_NIGHT"}, AllowedPeriodsAt(at(23)))
	assert.ElementsMatch(t, []string{"LATE_NIGHT"}, AllowedPeriodsAt(at(1)))
	// mid-afternoon gap between named serving windows
	assert.ElementsMatch(t, []string{"NONE"}, AllowedPeriodsAt(at(16)))
}

func TestTopHallsWeighting(t *testing.T) {
	db := newTestDB(t)
	tz := time.UTC

	menus := repository.NewMenuRepository(db)
	halls := repository.NewHallRepository(db)
	ratings := repository.NewRatingRepository(db)
	svc := NewRecommendService(menus, halls, ratings, tz)

	user := entity.User{Username: "alice", Email: "alice@example.edu", HashedPassword: "x"}
	require.NoError(t, db.Create(&user).Error)

	now := time.Now().In(tz)
	periods := AllowedPeriodsAt(now)
	require.NotEmpty(t, periods)
	date := entity.MenuDate{Day: now.Day(), Month: int(now.Month()), Year: now.Year(), MealPeriod: periods[0]}

	// hall A: user has rated there; hall B: consensus only
	hallA := entity.DiningHall{Name: "de-neve-dining", DisplayName: "De Neve"}
	hallB := entity.DiningHall{Name: "bruin-plate", DisplayName: "Bruin Plate"}
	require.NoError(t, db.Create(&hallA).Error)
	require.NoError(t, db.Create(&hallB).Error)

	dishA := entity.Dish{HallID: hallA.ID, Name: "Pasta", AverageRating: 3}
	dishB := entity.Dish{HallID: hallB.ID, Name: "Salmon", AverageRating: 4}
	require.NoError(t, db.Create(&dishA).Error)
	require.NoError(t, db.Create(&dishB).Error)

	require.NoError(t, db.Create(&entity.Rating{UserID: user.ID, DishID: dishA.ID, Score: 5}).Error)

	require.NoError(t, menus.Create(&entity.Menu{HallID: hallA.ID, Date: date, Dishes: []entity.Dish{dishA}}))
	require.NoError(t, menus.Create(&entity.Menu{HallID: hallB.ID, Date: date, Dishes: []entity.Dish{dishB}}))

	results, err := svc.TopHallsForUser(user.ID)
	require.NoError(t, err)
	require.Len(t, results, 2)

	byName := map[string]HallRecommendation{}
	for _, r := range results {
		byName[r.Hall.Name] = r
	}

	// hall A blends the user's own 5 with the consensus 3: (2*5 + 3) / 3
	recA := byName["de-neve-dining"]
	assert.InDelta(t, (2*5.0+3.0)/3, recA.Score, 0.001)
	assert.Equal(t, "user,consensus", recA.Basis)

	recB := byName["bruin-plate"]
	assert.InDelta(t, 4.0, recB.Score, 0.001)
	assert.Equal(t, "consensus", recB.Basis)
}

func TestTopHallsEmptyWhenNothingServing(t *testing.T) {
	db := newTestDB(t)
	svc := NewRecommendService(
		repository.NewMenuRepository(db),
		repository.NewHallRepository(db),
		repository.NewRatingRepository(db),
		time.UTC,
	)

	user := entity.User{Username: "bob", Email: "bob@example.edu", HashedPassword: "x"}
	require.NoError(t, db.Create(&user).Error)

	results, err := svc.TopHallsForUser(user.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}
