package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

var ErrMenuNotFound = errors.New("no menu for that hall, date and meal period")

type MenuService struct {
	Menus *repository.MenuRepository
	Halls *repository.HallRepository
}

func NewMenuService(menus *repository.MenuRepository, halls *repository.HallRepository) *MenuService {
	return &MenuService{Menus: menus, Halls: halls}
}

// ResolvePeriods returns the meal periods actually served by a hall on a
// date. An empty slice (not an error) means nothing is served.
func (s *MenuService) ResolvePeriods(slug string, date entity.MenuDate) ([]string, error) {
	periods, err := s.Menus.MealPeriodsFor(slug, date)
	if err != nil {
		return nil, err
	}
	if periods == nil {
		periods = []string{}
	}
	return periods, nil
}

// LoadMenu fetches the menu for a fully-specified query. Callers are
// expected to have resolved the meal period first.
func (s *MenuService) LoadMenu(slug string, date entity.MenuDate) (*entity.Menu, error) {
	menu, err := s.Menus.FindByHallSlugAndDate(slug, date)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMenuNotFound
		}
		return nil, err
	}
	return menu, nil
}
