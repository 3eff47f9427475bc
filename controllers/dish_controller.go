package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
)

type DishController struct {
	Dishes *repository.DishRepository
}

func NewDishController(dishes *repository.DishRepository) *DishController {
	return &DishController{Dishes: dishes}
}

// GET /dish/:id
func (ctl *DishController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		resp.BadRequest(c, "invalid dish id")
		return
	}

	dish, err := ctl.Dishes.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "dish not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"dish": dish})
}
