package services

import (
	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/utils"
)

type ProfileService struct {
	Users      *repository.UserRepository
	UploadsDir string
}

func NewProfileService(users *repository.UserRepository, uploadsDir string) *ProfileService {
	return &ProfileService{Users: users, UploadsDir: uploadsDir}
}

// Update changes username/email and, when pictureB64 is non-empty, stores
// the decoded image and points the profile at it. Returns the updated user.
func (s *ProfileService) Update(userID uint, username, email string, pictureB64 *string) (*entity.User, error) {
	if !usernameRegexp.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if !emailRegexp.MatchString(email) {
		return nil, ErrInvalidEmail
	}

	current, err := s.Users.FindByID(userID)
	if err != nil {
		return nil, err
	}

	picturePath := current.ProfilePicture
	if pictureB64 != nil && *pictureB64 != "" {
		path, err := utils.SaveBase64Image(*pictureB64, s.UploadsDir+"/profile_pictures")
		if err != nil {
			return nil, err
		}
		picturePath = &path
	}

	if err := s.Users.UpdateProfile(userID, username, email, picturePath); err != nil {
		return nil, err
	}
	return s.Users.FindByID(userID)
}
