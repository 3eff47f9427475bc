package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDishIndex(t *testing.T) *DishIndex {
	t.Helper()
	idx, err := OpenDishIndex(t.TempDir()+"/dish_index", false)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestDishSearchFuzzyName(t *testing.T) {
	idx := newDishIndex(t)
	require.NoError(t, idx.IndexBatch([]DishDocument{
		{ID: "1", Name: "Chicken Tikka", HallName: "spice-kitchen", Location: "Curry Station"},
		{ID: "2", Name: "Beef Brisket", HallName: "de-neve-dining"},
	}))

	// one-character typo still matches
	docs, err := idx.Search("chiken", "", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Chicken Tikka", docs[0].Name)
	assert.Equal(t, "Curry Station", docs[0].Location)
}

func TestDishSearchStemmedDescription(t *testing.T) {
	idx := newDishIndex(t)
	desc := "grilled over oak charcoal"
	require.NoError(t, idx.Index(DishDocument{
		ID: "1", Name: "Tri Tip", Description: desc, HallName: "bruin-plate",
	}))

	// porter stemming folds "grilling" and "grilled" together
	docs, err := idx.Search("grilling", "", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Tri Tip", docs[0].Name)
}

func TestDishSearchHallFilter(t *testing.T) {
	idx := newDishIndex(t)
	require.NoError(t, idx.IndexBatch([]DishDocument{
		{ID: "1", Name: "Cheese Pizza", HallName: "cafe-1919"},
		{ID: "2", Name: "Veggie Pizza", HallName: "de-neve-dining"},
	}))

	docs, err := idx.Search("pizza", "cafe-1919", 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Cheese Pizza", docs[0].Name)
}

func TestDishSearchEmptyQuery(t *testing.T) {
	idx := newDishIndex(t)
	_, err := idx.Search("   ", "", 10)
	assert.Error(t, err)
}

func TestUserSearchExcludesSelf(t *testing.T) {
	idx, err := OpenUserIndex(t.TempDir()+"/user_index", false)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })

	require.NoError(t, idx.IndexBatch([]UserDocument{
		{ID: "1", Username: "alice"},
		{ID: "2", Username: "alyce"}, // within fuzziness 1 of "alice"
	}))

	docs, err := idx.Search("alice", 1, 10)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "alyce", docs[0].Username)
}
