package repository

import (
	"fmt"

	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

// Create inserts a rating and folds it into the dish's stored average.
func (r *RatingRepository) Create(rating *entity.Rating) error {
	return r.createIn(r.DB, rating)
}

// CreateBatch inserts a set of ratings atomically: either every rating
// lands (with dish averages updated) or none do.
func (r *RatingRepository) CreateBatch(ratings []entity.Rating) error {
	return r.DB.Transaction(func(tx *gorm.DB) error {
		for i := range ratings {
			if err := r.createIn(tx, &ratings[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *RatingRepository) createIn(tx *gorm.DB, rating *entity.Rating) error {
	var dish entity.Dish
	if err := tx.First(&dish, rating.DishID).Error; err != nil {
		return fmt.Errorf("could not find dish %d: %w", rating.DishID, err)
	}

	var count int64
	if err := tx.Model(&entity.Rating{}).
		Where("dish_id = ?", rating.DishID).
		Count(&count).Error; err != nil {
		return fmt.Errorf("could not count ratings for dish %d: %w", rating.DishID, err)
	}

	if count == 0 {
		dish.AverageRating = float64(rating.Score)
	} else {
		var total float64
		if err := tx.Model(&entity.Rating{}).
			Where("dish_id = ?", rating.DishID).
			Select("SUM(score)").
			Scan(&total).Error; err != nil {
			return fmt.Errorf("could not sum ratings for dish %d: %w", rating.DishID, err)
		}
		dish.AverageRating = (total + float64(rating.Score)) / float64(count+1)
	}

	if err := tx.Save(&dish).Error; err != nil {
		return fmt.Errorf("could not update dish average: %w", err)
	}
	return tx.Create(rating).Error
}

// RecalculateAll resweeps every dish's average from its stored ratings.
// Used by the admin recalc command after manual data fixes.
func (r *RatingRepository) RecalculateAll() error {
	var dishes []entity.Dish
	if err := r.DB.Find(&dishes).Error; err != nil {
		return fmt.Errorf("could not retrieve dishes: %w", err)
	}

	for _, dish := range dishes {
		var count int64
		if err := r.DB.Model(&entity.Rating{}).
			Where("dish_id = ?", dish.ID).
			Count(&count).Error; err != nil {
			return fmt.Errorf("could not count ratings for dish %d: %w", dish.ID, err)
		}

		if count == 0 {
			dish.AverageRating = 0
		} else {
			var total float64
			if err := r.DB.Model(&entity.Rating{}).
				Where("dish_id = ?", dish.ID).
				Select("SUM(score)").
				Scan(&total).Error; err != nil {
				return fmt.Errorf("could not sum ratings for dish %d: %w", dish.ID, err)
			}
			dish.AverageRating = total / float64(count)
		}

		if err := r.DB.Save(&dish).Error; err != nil {
			return fmt.Errorf("could not update average for dish %d: %w", dish.ID, err)
		}
	}
	return nil
}

func (r *RatingRepository) FindByUserID(userID uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.DB.Preload("Dish").Preload("User").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

func (r *RatingRepository) FindByDishID(dishID uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.DB.Preload("User").
		Where("dish_id = ?", dishID).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByUserIDs loads ratings for a set of users, newest first. Used for
// the friend feed.
func (r *RatingRepository) FindByUserIDs(userIDs []uint) ([]entity.Rating, error) {
	var ratings []entity.Rating
	err := r.DB.Preload("Dish").Preload("User").
		Where("user_id IN ?", userIDs).
		Order("created_at DESC").
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	return ratings, nil
}

// FindByUserForDishes maps dish ID to the user's score for dishes the
// user has rated, restricted to the given dish set.
func (r *RatingRepository) FindByUserForDishes(userID uint, dishIDs []uint) (map[uint]float64, error) {
	var ratings []entity.Rating
	err := r.DB.Where("user_id = ? AND dish_id IN ?", userID, dishIDs).
		Find(&ratings).Error
	if err != nil {
		return nil, err
	}
	scores := make(map[uint]float64, len(ratings))
	for _, rt := range ratings {
		scores[rt.DishID] = float64(rt.Score)
	}
	return scores, nil
}
