package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/utils"
)

type ProfileController struct {
	Profiles *services.ProfileService
}

func NewProfileController(profiles *services.ProfileService) *ProfileController {
	return &ProfileController{Profiles: profiles}
}

type profileUpdateRequest struct {
	Username       string  `json:"username" binding:"required"`
	Email          string  `json:"email" binding:"required"`
	ProfilePicture *string `json:"profile_picture"` // base64, optional
}

// PUT /profile (auth)
func (ctl *ProfileController) Update(c *gin.Context) {
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, err := ctl.Profiles.Update(utils.CurrentUserID(c), req.Username, req.Email, req.ProfilePicture)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUsername),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, utils.ErrNotAnImage):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "user not found")
		default:
			resp.ServerError(c, err)
		}
		return
	}

	user.HashedPassword = ""
	resp.OK(c, gin.H{"user": user})
}
