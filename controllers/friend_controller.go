package controllers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/search"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/utils"
)

const userSearchLimit = 10

type FriendController struct {
	Friends *services.FriendService
	Users   *repository.UserRepository
	Index   *search.UserIndex
}

func NewFriendController(friends *services.FriendService, users *repository.UserRepository, index *search.UserIndex) *FriendController {
	return &FriendController{Friends: friends, Users: users, Index: index}
}

// GET /friends (auth)
func (ctl *FriendController) List(c *gin.Context) {
	friends, err := ctl.Friends.List(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"friends": friends})
}

// GET /in-friend-requests (auth)
func (ctl *FriendController) Incoming(c *gin.Context) {
	requests, err := ctl.Friends.Incoming(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"requests": requests})
}

// GET /out-friend-requests (auth)
func (ctl *FriendController) Outgoing(c *gin.Context) {
	requests, err := ctl.Friends.Outgoing(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"requests": requests})
}

type sendRequestBody struct {
	Username string `json:"username" binding:"required"`
}

// POST /send-friend-request (auth)
func (ctl *FriendController) Send(c *gin.Context) {
	var body sendRequestBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	target, err := ctl.Users.FindByUsername(body.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	err = ctl.Friends.Send(utils.CurrentUserID(c), target.ID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrSelfRequest),
			errors.Is(err, repository.ErrRequestExists):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "friend request sent")
}

type requestActionBody struct {
	RequestID uint `json:"request_id" binding:"required"`
}

// POST /accept-friend-request (auth)
func (ctl *FriendController) Accept(c *gin.Context) {
	var body requestActionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Friends.Accept(utils.CurrentUserID(c), body.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "friend request not found")
		case errors.Is(err, services.ErrNotYourRequest):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "friend request accepted")
}

// POST /decline-friend-request (auth)
func (ctl *FriendController) Decline(c *gin.Context) {
	var body requestActionBody
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	err := ctl.Friends.Decline(utils.CurrentUserID(c), body.RequestID)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			resp.NotFound(c, "friend request not found")
		case errors.Is(err, services.ErrNotYourRequest):
			resp.Forbidden(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Message(c, "friend request declined")
}

// GET /search-users?username= (auth). Fuzzy match via the bleve index,
// falling back to a LIKE scan if the index is not available.
func (ctl *FriendController) SearchUsers(c *gin.Context) {
	username := strings.TrimSpace(c.Query("username"))
	if username == "" {
		resp.BadRequest(c, "username query is required")
		return
	}

	if ctl.Index != nil {
		docs, err := ctl.Index.Search(username, utils.CurrentUserID(c), userSearchLimit)
		if err != nil {
			resp.ServerError(c, err)
			return
		}
		resp.OK(c, gin.H{"users": docs})
		return
	}

	users, err := ctl.Users.SearchByUsername(username)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	selfID := utils.CurrentUserID(c)
	filtered := users[:0]
	for _, u := range users {
		if u.ID != selfID {
			filtered = append(filtered, u)
		}
	}
	resp.OK(c, gin.H{"users": filtered})
}
