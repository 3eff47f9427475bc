package repository

import (
	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

type HallRepository struct {
	DB *gorm.DB
}

func NewHallRepository(db *gorm.DB) *HallRepository {
	return &HallRepository{DB: db}
}

func (r *HallRepository) FindByID(id uint) (*entity.DiningHall, error) {
	var hall entity.DiningHall
	err := r.DB.First(&hall, id).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

func (r *HallRepository) FindBySlug(slug string) (*entity.DiningHall, error) {
	var hall entity.DiningHall
	err := r.DB.Where("name = ?", slug).First(&hall).Error
	if err != nil {
		return nil, err
	}
	return &hall, nil
}

// HallRatingSummary is the aggregate row behind GET /dining-halls.
type HallRatingSummary struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	DisplayName string  `json:"display_name"`
	Rating      float64 `json:"rating"`
	ReviewCount int64   `json:"reviewCount"`
}

// ListWithRatings returns every hall with the average score and count of
// all ratings on its dishes. Halls without ratings come back as 0 / 0.
func (r *HallRepository) ListWithRatings() ([]HallRatingSummary, error) {
	var summaries []HallRatingSummary
	err := r.DB.Raw(`
		SELECT
			dh.id,
			dh.name,
			dh.display_name,
			COALESCE(AVG(rt.score), 0) AS rating,
			COUNT(rt.id) AS review_count
		FROM dining_halls dh
		LEFT JOIN dishes d ON dh.id = d.hall_id
		LEFT JOIN ratings rt ON d.id = rt.dish_id
		GROUP BY dh.id, dh.name, dh.display_name
		ORDER BY dh.name
	`).Scan(&summaries).Error
	if err != nil {
		return nil, err
	}

	// one decimal place, matching what the cards display
	for i := range summaries {
		summaries[i].Rating = float64(int(summaries[i].Rating*10)) / 10
	}
	return summaries, nil
}
