package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupByLocationPreservesOrder(t *testing.T) {
	dishes := []Dish{
		{ID: 1, Name: "Pancakes", Location: "The Front Burner"},
		{ID: 2, Name: "Omelet", Location: "Flex Bar"},
		{ID: 3, Name: "Waffles", Location: "The Front Burner"},
		{ID: 4, Name: "Fruit", Location: "Harvest"},
		{ID: 5, Name: "Scramble", Location: "Flex Bar"},
	}

	groups := GroupByLocation(dishes)

	require.Len(t, groups, 3)
	assert.Equal(t, "The Front Burner", groups[0].Location)
	assert.Equal(t, "Flex Bar", groups[1].Location)
	assert.Equal(t, "Harvest", groups[2].Location)

	// relative order within each group matches the input
	assert.Equal(t, []uint{1, 3}, dishIDs(groups[0].Dishes))
	assert.Equal(t, []uint{2, 5}, dishIDs(groups[1].Dishes))
	assert.Equal(t, []uint{4}, dishIDs(groups[2].Dishes))
}

func TestGroupByLocationEmpty(t *testing.T) {
	assert.Empty(t, GroupByLocation(nil))
}

func dishIDs(dishes []Dish) []uint {
	ids := make([]uint, len(dishes))
	for i, d := range dishes {
		ids[i] = d.ID
	}
	return ids
}

func TestLoadMenuFailureIsMenuFetchError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"no menu for that hall, date and meal period"}`))
	}))
	defer server.Close()

	api := New(server.URL, nil)
	_, err := api.LoadMenu(context.Background(), "bruin-plate", Date{Year: 2024, Month: 3, Day: 1}, "LUNCH")

	require.Error(t, err)
	assert.True(t, IsMenuFetchError(err))
	assert.Contains(t, err.Error(), "bruin-plate")
}

func TestLoadMenuSendsFullQuery(t *testing.T) {
	var got map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{
			"hall_name":   r.URL.Query().Get("hall_name"),
			"month":       r.URL.Query().Get("month"),
			"day":         r.URL.Query().Get("day"),
			"year":        r.URL.Query().Get("year"),
			"meal_period": r.URL.Query().Get("meal_period"),
		}
		w.Write([]byte(`{"menu":{"hall":{"name":"de-neve-dining"},"dishes":[]}}`))
	}))
	defer server.Close()

	api := New(server.URL, nil)
	menu, err := api.LoadMenu(context.Background(), "de-neve-dining", Date{Year: 2024, Month: 3, Day: 1}, "DINNER")

	require.NoError(t, err)
	assert.Equal(t, "de-neve-dining", menu.Hall.Name)
	assert.Equal(t, map[string]string{
		"hall_name":   "de-neve-dining",
		"month":       "3",
		"day":         "1",
		"year":        "2024",
		"meal_period": "DINNER",
	}, got)
}
