package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

func TestResolvePeriodsNeverNil(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db), repository.NewHallRepository(db))

	periods, err := svc.ResolvePeriods("de-neve-dining", entity.MenuDate{Day: 1, Month: 3, Year: 2024})
	require.NoError(t, err)
	assert.NotNil(t, periods)
	assert.Empty(t, periods)
}

func TestLoadMenuNotFound(t *testing.T) {
	db := newTestDB(t)
	svc := NewMenuService(repository.NewMenuRepository(db), repository.NewHallRepository(db))

	hall := entity.DiningHall{Name: "the-drey", DisplayName: "The Drey"}
	require.NoError(t, db.Create(&hall).Error)

	_, err := svc.LoadMenu("the-drey", entity.MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: "LUNCH"})
	assert.ErrorIs(t, err, ErrMenuNotFound)
}
