package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
)

type HallController struct {
	Halls *repository.HallRepository
}

func NewHallController(halls *repository.HallRepository) *HallController {
	return &HallController{Halls: halls}
}

// GET /dining-halls
func (ctl *HallController) List(c *gin.Context) {
	summaries, err := ctl.Halls.ListWithRatings()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"dining_halls": summaries})
}
