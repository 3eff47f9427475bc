package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
)

// MenuFetchError wraps any failure to load a menu so the wizard can tell
// "menu missing/unreachable" apart from its own guard violations.
type MenuFetchError struct {
	Hall   string
	Period string
	Err    error
}

func (e *MenuFetchError) Error() string {
	return fmt.Sprintf("loading menu for %s (%s): %v", e.Hall, e.Period, e.Err)
}

func (e *MenuFetchError) Unwrap() error { return e.Err }

// IsMenuFetchError reports whether err came from a failed menu load.
func IsMenuFetchError(err error) bool {
	var fetchErr *MenuFetchError
	return errors.As(err, &fetchErr)
}

// LoadMenu fetches the dishes a hall serves for one date and meal period.
// Callers resolve valid periods first; an unknown combination is a
// MenuFetchError, not a panic.
func (c *Client) LoadMenu(ctx context.Context, hall string, date Date, mealPeriod string) (*Menu, error) {
	query := url.Values{}
	query.Set("hall_name", hall)
	query.Set("month", strconv.Itoa(date.Month))
	query.Set("day", strconv.Itoa(date.Day))
	query.Set("year", strconv.Itoa(date.Year))
	query.Set("meal_period", mealPeriod)

	var body struct {
		Menu Menu `json:"menu"`
	}
	if err := c.get(ctx, "/menu", query, &body); err != nil {
		return nil, &MenuFetchError{Hall: hall, Period: mealPeriod, Err: err}
	}
	return &body.Menu, nil
}

// LocationGroup is the dishes of one serving station, in menu order.
type LocationGroup struct {
	Location string
	Dishes   []Dish
}

// GroupByLocation splits a dish list by station. Groups appear in order
// of first sighting and each dish keeps its relative order within its
// group. Pure function of the input.
func GroupByLocation(dishes []Dish) []LocationGroup {
	var groups []LocationGroup
	byLocation := make(map[string]int)
	for _, dish := range dishes {
		i, ok := byLocation[dish.Location]
		if !ok {
			i = len(groups)
			byLocation[dish.Location] = i
			groups = append(groups, LocationGroup{Location: dish.Location})
		}
		groups[i].Dishes = append(groups[i].Dishes, dish)
	}
	return groups
}
