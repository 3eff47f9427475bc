package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gsonntag/bruinbite/configs"
	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/search"
)

func setupServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &configs.Config{
		DBSource:   ":memory:",
		JWTSecret:  "test-secret",
		JWTTTL:     time.Hour,
		UploadsDir: t.TempDir(),
	}

	configs.ConnectionDB(cfg.DBSource)
	sqlDB, err := configs.DB().DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite is per-connection
	configs.SetupDatabase()
	require.NoError(t, configs.SeedHalls())

	dishIdx, err := search.OpenDishIndex(t.TempDir()+"/dish_index", false)
	require.NoError(t, err)
	t.Cleanup(func() { dishIdx.Close() })

	userIdx, err := search.OpenUserIndex(t.TempDir()+"/user_index", false)
	require.NoError(t, err)
	t.Cleanup(func() { userIdx.Close() })

	r := gin.New()
	RegisterRoutes(r, cfg, dishIdx, userIdx, time.UTC)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestEndToEndReviewFlow(t *testing.T) {
	r := setupServer(t)

	// signup
	rec := doJSON(t, r, http.MethodPost, "/signup", "", gin.H{
		"username": "alice", "email": "alice@example.edu", "password": "password1",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var signupBody struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &signupBody))
	token := signupBody.Token
	require.NotEmpty(t, token)

	// seed a menu directly; ingestion has its own tests
	db := configs.DB()
	var hall entity.DiningHall
	require.NoError(t, db.Where("name = ?", "de-neve-dining").First(&hall).Error)
	dish := entity.Dish{HallID: hall.ID, Name: "Pasta Bolognese", Location: "The Front Burner"}
	require.NoError(t, db.Create(&dish).Error)
	require.NoError(t, db.Create(&entity.Menu{
		HallID: hall.ID,
		Date:   entity.MenuDate{Day: 1, Month: 3, Year: 2024, MealPeriod: "LUNCH"},
		Dishes: []entity.Dish{dish},
	}).Error)

	// resolver sees the stored period
	rec = doJSON(t, r, http.MethodGet, "/hall-meal-periods?hall_name=de-neve-dining&month=3&day=1&year=2024", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var periodsBody struct {
		Periods []string `json:"periods"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &periodsBody))
	assert.Equal(t, []string{"LUNCH"}, periodsBody.Periods)

	// menu loads for the resolved period
	rec = doJSON(t, r, http.MethodGet, "/menu?hall_name=de-neve-dining&month=3&day=1&year=2024&meal_period=LUNCH", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var menuBody struct {
		Menu struct {
			Dishes []entity.Dish `json:"dishes"`
		} `json:"menu"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &menuBody))
	require.Len(t, menuBody.Menu.Dishes, 1)

	// an unknown period 404s
	rec = doJSON(t, r, http.MethodGet, "/menu?hall_name=de-neve-dining&month=3&day=1&year=2024&meal_period=DINNER", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// rating requires auth
	rec = doJSON(t, r, http.MethodPost, "/ratings", "", gin.H{"dish_id": dish.ID, "score": 4})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// out-of-range score rejected
	rec = doJSON(t, r, http.MethodPost, "/ratings", token, gin.H{"dish_id": dish.ID, "score": 6})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// valid rating lands
	rec = doJSON(t, r, http.MethodPost, "/ratings", token, gin.H{"dish_id": dish.ID, "score": 4, "comment": "solid"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doJSON(t, r, http.MethodGet, "/dishratings?dish_id=1", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var ratings []entity.Rating
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ratings))
	require.Len(t, ratings, 1)
	assert.Equal(t, 4, ratings[0].Score)

	// batch endpoint is all-or-nothing
	rec = doJSON(t, r, http.MethodPost, "/ratings/batch", token, gin.H{
		"ratings": []gin.H{
			{"dish_id": dish.ID, "score": 5},
			{"dish_id": dish.ID, "score": 9},
		},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/dishratings?dish_id=1", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ratings))
	assert.Len(t, ratings, 1, "failed batch writes nothing")

	// hall aggregates reflect the one rating
	rec = doJSON(t, r, http.MethodGet, "/dining-halls", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var hallsBody struct {
		DiningHalls []struct {
			Name        string  `json:"name"`
			Rating      float64 `json:"rating"`
			ReviewCount int64   `json:"reviewCount"`
		} `json:"dining_halls"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &hallsBody))
	for _, h := range hallsBody.DiningHalls {
		if h.Name == "de-neve-dining" {
			assert.Equal(t, 4.0, h.Rating)
			assert.EqualValues(t, 1, h.ReviewCount)
		}
	}

	// admin reindex is forbidden for regular users
	rec = doJSON(t, r, http.MethodPost, "/admin/reindex", token, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}
