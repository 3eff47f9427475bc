package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/utils"
)

type AuthController struct {
	Auth  *services.AuthService
	Users *repository.UserRepository
}

func NewAuthController(auth *services.AuthService, users *repository.UserRepository) *AuthController {
	return &AuthController{Auth: auth, Users: users}
}

type signupRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type loginRequest struct {
	Username string `json:"username" binding:"required"` // username or email
	Password string `json:"password" binding:"required"`
}

// POST /signup
func (ctl *AuthController) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctl.Auth.Signup(req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidUsername),
			errors.Is(err, services.ErrInvalidEmail),
			errors.Is(err, services.ErrInvalidPassword),
			errors.Is(err, services.ErrUserExists):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /login
func (ctl *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	user, token, err := ctl.Auth.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			resp.Unauthorized(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"token": token, "user": user})
}

// POST /logout. Sessions are stateless JWTs, nothing to revoke server-side.
func (ctl *AuthController) Logout(c *gin.Context) {
	resp.Message(c, "logout success")
}

// GET /userinfo (auth)
func (ctl *AuthController) UserInfo(c *gin.Context) {
	user, err := ctl.Users.FindByID(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	user.HashedPassword = ""
	resp.OK(c, gin.H{"user": user})
}
