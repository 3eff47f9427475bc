package ingest

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
)

// MenuFile is the shape of a scraped menu dump: one calendar date, every
// hall that served, grouped by meal period and station.
type MenuFile struct {
	Day   int        `json:"day"`
	Month int        `json:"month"`
	Year  int        `json:"year"`
	Halls []HallMenu `json:"halls"`
}

type HallMenu struct {
	Hall    string       `json:"hall"` // slug, e.g. "de-neve-dining"
	Periods []PeriodMenu `json:"periods"`
}

type PeriodMenu struct {
	MealPeriod string        `json:"meal_period"`
	Locations  []StationMenu `json:"locations"`
}

type StationMenu struct {
	Location string     `json:"location"`
	Dishes   []DishItem `json:"dishes"`
}

type DishItem struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

var ErrUnknownHall = errors.New("unknown dining hall slug")

// Ingestor loads menu dumps into the database. A run is idempotent: each
// (hall, date, period) that was already ingested is skipped via the
// update tracker.
type Ingestor struct {
	DB     *gorm.DB
	Halls  *repository.HallRepository
	Dishes *repository.DishRepository
	Menus  *repository.MenuRepository
}

func NewIngestor(db *gorm.DB, halls *repository.HallRepository, dishes *repository.DishRepository, menus *repository.MenuRepository) *Ingestor {
	return &Ingestor{DB: db, Halls: halls, Dishes: dishes, Menus: menus}
}

// IngestFile parses a menu dump and stores every menu it describes.
// Returns the number of menus created.
func (in *Ingestor) IngestFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading menu file: %w", err)
	}

	var file MenuFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parsing menu file: %w", err)
	}
	return in.Ingest(&file)
}

func (in *Ingestor) Ingest(file *MenuFile) (int, error) {
	created := 0
	for _, hallMenu := range file.Halls {
		hall, err := in.Halls.FindBySlug(hallMenu.Hall)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return created, fmt.Errorf("%w: %s", ErrUnknownHall, hallMenu.Hall)
			}
			return created, err
		}

		for _, periodMenu := range hallMenu.Periods {
			if !entity.MealPeriod(periodMenu.MealPeriod).Valid() {
				return created, fmt.Errorf("unknown meal period %q for %s", periodMenu.MealPeriod, hallMenu.Hall)
			}

			date := entity.MenuDate{
				Day:        file.Day,
				Month:      file.Month,
				Year:       file.Year,
				MealPeriod: periodMenu.MealPeriod,
			}

			done, err := in.alreadyIngested(hallMenu.Hall, date)
			if err != nil {
				return created, err
			}
			if done {
				log.Printf("skipping %s %s %d/%d/%d, already ingested",
					hallMenu.Hall, date.MealPeriod, date.Month, date.Day, date.Year)
				continue
			}

			if err := in.ingestPeriod(hall, date, periodMenu); err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

func (in *Ingestor) ingestPeriod(hall *entity.DiningHall, date entity.MenuDate, periodMenu PeriodMenu) error {
	var dishes []entity.Dish
	for _, station := range periodMenu.Locations {
		for _, item := range station.Dishes {
			dish, err := in.Dishes.GetOrCreate(item.Name, hall.ID, station.Location, date)
			if err != nil {
				return fmt.Errorf("dish %q at %s: %w", item.Name, hall.Name, err)
			}
			if item.Description != nil && dish.Description == nil {
				dish.Description = item.Description
				if err := in.DB.Model(&dish).Update("description", item.Description).Error; err != nil {
					return err
				}
			}
			dishes = append(dishes, dish)
		}
	}

	menu := entity.Menu{
		HallID: hall.ID,
		Date:   date,
		Dishes: dishes,
	}
	if err := in.Menus.Create(&menu); err != nil {
		return fmt.Errorf("menu for %s: %w", hall.Name, err)
	}

	return in.markIngested(hall.Name, date)
}

func trackerKey(slug string, date entity.MenuDate) string {
	return fmt.Sprintf("menu-ingest:%s:%04d-%02d-%02d:%s",
		slug, date.Year, date.Month, date.Day, date.MealPeriod)
}

func (in *Ingestor) alreadyIngested(slug string, date entity.MenuDate) (bool, error) {
	var tracker entity.UpdateTracker
	err := in.DB.Where("key = ?", trackerKey(slug, date)).First(&tracker).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (in *Ingestor) markIngested(slug string, date entity.MenuDate) error {
	tracker := entity.UpdateTracker{
		Key:       trackerKey(slug, date),
		LastRunAt: date,
	}
	return in.DB.Create(&tracker).Error
}
