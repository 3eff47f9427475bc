package repository

import (
	"github.com/gsonntag/bruinbite/entity"
	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *entity.User) error {
	return r.DB.Create(user).Error
}

// FindByNameOrEmail matches the login identifier against either column.
func (r *UserRepository) FindByNameOrEmail(identifier string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("username = ? OR email = ?", identifier, identifier).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByID(id uint) (*entity.User, error) {
	var user entity.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*entity.User, error) {
	var user entity.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// SearchByUsername is the plain-LIKE fallback for user search when the
// bleve index is unavailable.
func (r *UserRepository) SearchByUsername(fragment string) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("username LIKE ?", "%"+fragment+"%").Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) FindAll() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// UpdateProfile writes username/email, and the picture path when provided.
func (r *UserRepository) UpdateProfile(userID uint, username, email string, picturePath *string) error {
	updates := map[string]interface{}{
		"username": username,
		"email":    email,
	}
	if picturePath != nil {
		updates["profile_picture"] = *picturePath
	}

	result := r.DB.Model(&entity.User{}).Where("id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
