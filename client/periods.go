package client

import (
	"context"
	"net/url"
	"strconv"
)

// HallMealPeriods asks the server which meal periods a hall serves on a
// date. The server's answer is authoritative; see PeriodForClock for the
// placeholder heuristic used before the first resolution completes.
func (c *Client) HallMealPeriods(ctx context.Context, hall string, date Date) ([]string, error) {
	query := url.Values{}
	query.Set("hall_name", hall)
	query.Set("month", strconv.Itoa(date.Month))
	query.Set("day", strconv.Itoa(date.Day))
	query.Set("year", strconv.Itoa(date.Year))

	var body struct {
		Periods []string `json:"periods"`
	}
	if err := c.get(ctx, "/hall-meal-periods", query, &body); err != nil {
		return nil, err
	}
	if body.Periods == nil {
		body.Periods = []string{}
	}
	return body.Periods, nil
}

// ReconcilePeriod keeps the current selection if the new period set still
// contains it; otherwise it falls back to the first available period, or
// "" when nothing is served. The result is always in periods or "".
func ReconcilePeriod(selected string, periods []string) string {
	for _, p := range periods {
		if p == selected && selected != "" {
			return selected
		}
	}
	if len(periods) > 0 {
		return periods[0]
	}
	return ""
}

// PeriodForClock guesses a meal period from a 12-hour wall-clock reading.
// Only a hint for the initial selection; server resolution supersedes it.
func PeriodForClock(hour12 int, pm bool) string {
	hour := hour12
	switch {
	case hour12 == 12 && pm:
		hour = 12
	case hour12 == 12 && !pm:
		hour = 0
	case pm:
		hour = hour12 + 12
	}

	switch {
	case hour >= 3 && hour < 11:
		return "BREAKFAST"
	case hour >= 11 && hour < 16:
		return "LUNCH"
	case hour >= 16 && hour < 21:
		return "DINNER"
	default:
		return "LATE_NIGHT"
	}
}
