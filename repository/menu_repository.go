package repository

import (
	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: db}
}

func (r *MenuRepository) Create(menu *entity.Menu) error {
	return r.DB.Create(menu).Error
}

// FindByHallSlugAndDate loads the menu (with dishes and hall) for one
// hall slug, calendar date, and meal period.
func (r *MenuRepository) FindByHallSlugAndDate(slug string, date entity.MenuDate) (*entity.Menu, error) {
	var menu entity.Menu
	err := r.DB.Preload("Dishes").Preload("Hall").
		Joins("JOIN dining_halls ON dining_halls.id = menus.hall_id").
		Where("dining_halls.name = ? AND date_day = ? AND date_month = ? AND date_year = ? AND date_meal_period = ?",
			slug, date.Day, date.Month, date.Year, date.MealPeriod).
		First(&menu).Error
	if err != nil {
		return nil, err
	}
	return &menu, nil
}

// MealPeriodsFor returns the distinct meal periods with a stored menu for
// the (hall, date) pair. Empty result means nothing is served that day.
func (r *MenuRepository) MealPeriodsFor(slug string, date entity.MenuDate) ([]string, error) {
	var periods []string
	err := r.DB.
		Table("menus").
		Joins("JOIN dining_halls ON dining_halls.id = menus.hall_id").
		Where("dining_halls.name = ? AND date_day = ? AND date_month = ? AND date_year = ?",
			slug, date.Day, date.Month, date.Year).
		Distinct().
		Order("date_meal_period").
		Pluck("date_meal_period", &periods).Error
	if err != nil {
		return nil, err
	}
	return periods, nil
}

// FindAllForDate loads every hall's menus matching any of the given meal
// periods on one date. Used by the recommender.
func (r *MenuRepository) FindAllForDate(date entity.MenuDate, periods []string) ([]entity.Menu, error) {
	var menus []entity.Menu
	err := r.DB.Preload("Dishes").
		Where("date_day = ? AND date_month = ? AND date_year = ? AND date_meal_period IN ?",
			date.Day, date.Month, date.Year, periods).
		Find(&menus).Error
	if err != nil {
		return nil, err
	}
	return menus, nil
}
