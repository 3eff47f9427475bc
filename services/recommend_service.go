package services

import (
	"sort"
	"time"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

// HallRecommendation is one entry of the top-3 answer: a hall, the
// projected score, what the score was based on, and its best dishes now.
type HallRecommendation struct {
	Hall      entity.DiningHall `json:"hall"`
	Score     float64           `json:"score"`
	Basis     string            `json:"basis"`
	TopDishes []entity.Dish     `json:"top_dishes"`
}

type RecommendService struct {
	Menus   *repository.MenuRepository
	Halls   *repository.HallRepository
	Ratings *repository.RatingRepository
	TZ      *time.Location
}

func NewRecommendService(menus *repository.MenuRepository, halls *repository.HallRepository, ratings *repository.RatingRepository, tz *time.Location) *RecommendService {
	return &RecommendService{Menus: menus, Halls: halls, Ratings: ratings, TZ: tz}
}

// AllowedPeriodsAt maps a wall-clock instant to the meal periods a hall
// could currently be serving under, including the compound windows.
func AllowedPeriodsAt(now time.Time) []string {
	period := periodForHour(now.Hour())
	results := []string{period}
	if period != "NONE" && period != string(entity.LateNight) {
		results = append(results, string(entity.AllDay))
	}
	if period == string(entity.Lunch) || period == string(entity.Dinner) {
		results = append(results, string(entity.LunchDinner))
	}
	return results
}

func periodForHour(hour int) string {
	switch {
	case hour > 7 && hour < 10:
		return string(entity.Breakfast)
	case hour > 11 && hour < 15:
		return string(entity.Lunch)
	case hour > 17 && hour < 21:
		return string(entity.Dinner)
	case hour < 2 || hour > 21:
		return string(entity.LateNight)
	default:
		return "NONE"
	}
}

// TopHallsForUser projects how much the user would like each hall serving
// right now. Halls the user has rated dishes at are weighted 2/3 the
// user's own average and 1/3 the consensus; unknown halls use consensus
// alone. Returns the top 3 with each hall's 3 best-rated dishes.
func (s *RecommendService) TopHallsForUser(userID uint) ([]HallRecommendation, error) {
	now := time.Now().In(s.TZ)
	date := entity.MenuDate{Day: now.Day(), Month: int(now.Month()), Year: now.Year()}
	periods := AllowedPeriodsAt(now)

	menus, err := s.Menus.FindAllForDate(date, periods)
	if err != nil {
		return nil, err
	}
	if len(menus) == 0 {
		return nil, nil
	}

	dishIDs := make([]uint, 0, 64)
	for _, m := range menus {
		for _, d := range m.Dishes {
			dishIDs = append(dishIDs, d.ID)
		}
	}
	if len(dishIDs) == 0 {
		return nil, nil
	}

	userScores, err := s.Ratings.FindByUserForDishes(userID, dishIDs)
	if err != nil {
		return nil, err
	}

	var results []HallRecommendation
	for _, menu := range menus {
		if len(menu.Dishes) == 0 {
			continue
		}

		var consensusSum, userSum float64
		var consensusCount, userCount int
		for _, dish := range menu.Dishes {
			if dish.AverageRating == 0 {
				continue
			}
			consensusSum += dish.AverageRating
			consensusCount++
			if score, ok := userScores[dish.ID]; ok {
				userSum += score
				userCount++
			}
		}
		if consensusCount > 0 {
			consensusSum /= float64(consensusCount)
		}

		finalScore := consensusSum
		basis := "consensus"
		if userCount > 0 {
			userSum /= float64(userCount)
			finalScore = (2*userSum + consensusSum) / 3
			basis = "user,consensus"
		}

		hall, err := s.Halls.FindByID(menu.HallID)
		if err != nil {
			continue
		}

		sort.Slice(menu.Dishes, func(i, j int) bool {
			if menu.Dishes[i].AverageRating == menu.Dishes[j].AverageRating {
				return menu.Dishes[i].ID > menu.Dishes[j].ID
			}
			return menu.Dishes[i].AverageRating > menu.Dishes[j].AverageRating
		})
		topCount := 3
		if len(menu.Dishes) < topCount {
			topCount = len(menu.Dishes)
		}

		results = append(results, HallRecommendation{
			Hall:      *hall,
			Score:     finalScore,
			Basis:     basis,
			TopDishes: menu.Dishes[:topCount],
		})
	}

	sort.Slice(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Hall.ID < results[j].Hall.ID
		}
		return results[i].Score > results[j].Score
	})
	if len(results) > 3 {
		results = results[:3]
	}
	return results, nil
}
