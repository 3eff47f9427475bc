package repository

import (
	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

type DishRepository struct {
	DB *gorm.DB
}

func NewDishRepository(db *gorm.DB) *DishRepository {
	return &DishRepository{DB: db}
}

func (r *DishRepository) FindByID(id uint) (*entity.Dish, error) {
	var dish entity.Dish
	err := r.DB.Preload("Hall").First(&dish, id).Error
	if err != nil {
		return nil, err
	}
	return &dish, nil
}

func (r *DishRepository) FindAll() ([]entity.Dish, error) {
	var dishes []entity.Dish
	err := r.DB.Find(&dishes).Error
	if err != nil {
		return nil, err
	}
	return dishes, nil
}

// GetOrCreate looks a dish up by (hall, name) and creates it with the
// given location and sighting date if missing. An existing dish only has
// its last-seen date refreshed.
func (r *DishRepository) GetOrCreate(name string, hallID uint, location string, seen entity.MenuDate) (entity.Dish, error) {
	dish := entity.Dish{
		HallID: hallID,
		Name:   name,
	}
	result := r.DB.
		Where("hall_id = ? AND name = ?", hallID, name).
		Attrs(entity.Dish{
			Location: location,
			LastSeen: seen,
		}).
		FirstOrCreate(&dish)
	if err := result.Error; err != nil {
		return entity.Dish{}, err
	}

	if result.RowsAffected == 0 {
		if err := r.DB.
			Model(&dish).
			Updates(entity.Dish{LastSeen: seen}).
			Error; err != nil {
			return entity.Dish{}, err
		}
	}

	return dish, nil
}
