package controllers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/utils"
	"github.com/gsonntag/bruinbite/ws"
)

type RatingController struct {
	Ratings *services.RatingService
	Users   *repository.UserRepository
	Feed    *ws.FeedHub
}

func NewRatingController(ratings *services.RatingService, users *repository.UserRepository, feed *ws.FeedHub) *RatingController {
	return &RatingController{Ratings: ratings, Users: users, Feed: feed}
}

type ratingRequest struct {
	DishID  uint   `json:"dish_id" binding:"required"`
	Score   int    `json:"score" binding:"required"`
	Comment string `json:"comment"`
}

type batchRatingRequest struct {
	Ratings []ratingRequest `json:"ratings" binding:"required"`
}

// POST /ratings (auth)
func (ctl *RatingController) Submit(c *gin.Context) {
	var req ratingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	rating, err := ctl.Ratings.Submit(utils.CurrentUserID(c), req.DishID, req.Score, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScoreOutOfRange),
			errors.Is(err, services.ErrCommentTooLong):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if ctl.Feed != nil {
		ctl.Feed.Publish(rating)
	}
	resp.OK(c, gin.H{"message": "Rating submitted successfully", "rating": rating})
}

// POST /ratings/batch (auth). Every rating is validated before anything
// touches the database, and the whole set commits in one transaction.
func (ctl *RatingController) SubmitBatch(c *gin.Context) {
	var req batchRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	ratings := make([]entity.Rating, len(req.Ratings))
	for i, r := range req.Ratings {
		ratings[i] = entity.Rating{
			DishID:  r.DishID,
			Score:   r.Score,
			Comment: r.Comment,
		}
	}

	if err := ctl.Ratings.SubmitBatch(utils.CurrentUserID(c), ratings); err != nil {
		switch {
		case errors.Is(err, services.ErrScoreOutOfRange),
			errors.Is(err, services.ErrCommentTooLong),
			errors.Is(err, services.ErrEmptyBatch):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	if ctl.Feed != nil {
		for i := range ratings {
			ctl.Feed.Publish(&ratings[i])
		}
	}
	resp.Message(c, fmt.Sprintf("Successfully submitted %d reviews.", len(ratings)))
}

// GET /dishratings?dish_id=
func (ctl *RatingController) ForDish(c *gin.Context) {
	dishID, err := strconv.Atoi(c.Query("dish_id"))
	if err != nil || dishID <= 0 {
		resp.BadRequest(c, "invalid dish_id")
		return
	}

	ratings, err := ctl.Ratings.ForDish(uint(dishID))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ratings)
}

// GET /userratings (auth)
func (ctl *RatingController) ForMe(c *gin.Context) {
	ratings, err := ctl.Ratings.ForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ratings)
}

// GET /userratings/:username
func (ctl *RatingController) ForUsername(c *gin.Context) {
	username := c.Param("username")
	if username == "" {
		resp.BadRequest(c, "username is required")
		return
	}

	user, err := ctl.Users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "user not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	ratings, err := ctl.Ratings.ForUser(user.ID)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ratings)
}

// GET /friendratings (auth)
func (ctl *RatingController) ForFriends(c *gin.Context) {
	ratings, err := ctl.Ratings.ForFriends(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, ratings)
}
