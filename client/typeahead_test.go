package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeaheadDebouncesToOneRequest(t *testing.T) {
	var mu sync.Mutex
	var keywords []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		keywords = append(keywords, r.URL.Query().Get("keyword"))
		mu.Unlock()
		json.NewEncoder(w).Encode(map[string]any{"dishes": []Dish{{ID: 1, Name: "Pancakes"}}})
	}))
	defer server.Close()

	results := make(chan []Dish, 4)
	typeahead := NewTypeahead(New(server.URL, nil), func(dishes []Dish, err error) {
		require.NoError(t, err)
		results <- dishes
	})
	typeahead.SetDelay(60 * time.Millisecond)

	ctx := context.Background()
	typeahead.Update(ctx, "p", "")
	<-results // short query clears immediately
	typeahead.Update(ctx, "pa", "")
	time.Sleep(20 * time.Millisecond) // under the quiescence window
	typeahead.Update(ctx, "pan", "")

	select {
	case dishes := <-results:
		assert.Len(t, dishes, 1)
	case <-time.After(2 * time.Second):
		t.Fatal("debounced search never fired")
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"pan"}, keywords, "only the final keystroke's query reaches the network")
}

func TestTypeaheadShortQuerySkipsNetwork(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(map[string]any{"dishes": []Dish{}})
	}))
	defer server.Close()

	results := make(chan []Dish, 2)
	typeahead := NewTypeahead(New(server.URL, nil), func(dishes []Dish, err error) {
		require.NoError(t, err)
		results <- dishes
	})
	typeahead.SetDelay(10 * time.Millisecond)

	ctx := context.Background()
	typeahead.Update(ctx, "", "")
	assert.Empty(t, <-results)
	typeahead.Update(ctx, "p", "")
	assert.Empty(t, <-results)

	time.Sleep(50 * time.Millisecond)
	assert.Zero(t, hits, "queries of one character or less never touch the network")
}

func TestTypeaheadStopCancelsPendingQuery(t *testing.T) {
	var hits int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		json.NewEncoder(w).Encode(map[string]any{"dishes": []Dish{}})
	}))
	defer server.Close()

	typeahead := NewTypeahead(New(server.URL, nil), func([]Dish, error) {
		t.Error("cancelled query must not deliver")
	})
	typeahead.SetDelay(40 * time.Millisecond)

	typeahead.Update(context.Background(), "pancake", "")
	typeahead.Stop()

	time.Sleep(120 * time.Millisecond)
	assert.Zero(t, hits)
}

func TestTypeaheadDropsStaleResponses(t *testing.T) {
	// first request stalls long enough for the second to come back first
	var mu sync.Mutex
	delay := 150 * time.Millisecond
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		keyword := r.URL.Query().Get("keyword")
		mu.Lock()
		d := delay
		delay = 0
		mu.Unlock()
		time.Sleep(d)
		json.NewEncoder(w).Encode(map[string]any{"dishes": []Dish{{Name: keyword}}})
	}))
	defer server.Close()

	results := make(chan []Dish, 4)
	typeahead := NewTypeahead(New(server.URL, nil), func(dishes []Dish, err error) {
		require.NoError(t, err)
		results <- dishes
	})
	typeahead.SetDelay(10 * time.Millisecond)

	ctx := context.Background()
	typeahead.Update(ctx, "pancake", "")
	time.Sleep(40 * time.Millisecond) // let the slow request depart
	typeahead.Update(ctx, "pizza", "")

	first := <-results
	require.Len(t, first, 1)
	assert.Equal(t, "pizza", first[0].Name, "newest query wins")

	select {
	case stale := <-results:
		t.Fatalf("stale response delivered: %v", stale)
	case <-time.After(300 * time.Millisecond):
	}
}
