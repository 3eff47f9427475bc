package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/services"
	"github.com/gsonntag/bruinbite/utils"
)

type RecommendController struct {
	Recommender *services.RecommendService
}

func NewRecommendController(recommender *services.RecommendService) *RecommendController {
	return &RecommendController{Recommender: recommender}
}

// GET /recommended (auth)
func (ctl *RecommendController) Recommended(c *gin.Context) {
	halls, err := ctl.Recommender.TopHallsForUser(utils.CurrentUserID(c))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if len(halls) == 0 {
		resp.Message(c, "No halls are serving meals at this time.")
		return
	}
	resp.OK(c, gin.H{"halls": halls})
}
