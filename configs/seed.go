package configs

import (
	"log"

	"github.com/gsonntag/bruinbite/entity"
	"golang.org/x/crypto/bcrypt"
)

// SeedHalls inserts the fixed hall reference rows. Halls are never created
// through the API, so this is the only place they come from.
func SeedHalls() error {
	db := DB()
	for slug, display := range entity.HallSeeds {
		hall := entity.DiningHall{Name: slug, DisplayName: display}
		if err := db.Where(entity.DiningHall{Name: slug}).
			FirstOrCreate(&hall).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedAdmin creates the first admin account from env, if configured.
func SeedAdmin() error {
	db := DB()
	username := getEnv("ADMIN_USERNAME", "")
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if username == "" || email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_USERNAME/ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Username:       username,
		Email:          email,
		HashedPassword: string(hash),
		IsAdmin:        true,
	}
	return db.Create(&admin).Error
}
