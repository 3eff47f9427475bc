package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/gsonntag/bruinbite/entity"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1) // in-memory sqlite is per-connection

	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.DiningHall{}, &entity.Dish{}, &entity.Menu{},
		&entity.Rating{},
		&entity.FriendRequest{}, &entity.Friendship{},
		&entity.UpdateTracker{},
	))
	return db
}

func seedHall(t *testing.T, db *gorm.DB, slug, display string) entity.DiningHall {
	t.Helper()
	hall := entity.DiningHall{Name: slug, DisplayName: display}
	require.NoError(t, db.Create(&hall).Error)
	return hall
}

func seedUser(t *testing.T, db *gorm.DB, username string) entity.User {
	t.Helper()
	user := entity.User{
		Username:       username,
		Email:          username + "@example.edu",
		HashedPassword: "x",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedDish(t *testing.T, db *gorm.DB, hallID uint, name string) entity.Dish {
	t.Helper()
	dish := entity.Dish{HallID: hallID, Name: name, Location: "Main Line"}
	require.NoError(t, db.Create(&dish).Error)
	return dish
}
