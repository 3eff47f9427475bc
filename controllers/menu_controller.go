package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/entity"
	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/services"
)

type MenuController struct {
	Menus *services.MenuService
}

func NewMenuController(menus *services.MenuService) *MenuController {
	return &MenuController{Menus: menus}
}

type periodsQuery struct {
	HallName string `form:"hall_name" binding:"required"`
	Month    int    `form:"month" binding:"required"`
	Day      int    `form:"day" binding:"required"`
	Year     int    `form:"year" binding:"required"`
}

type menuQuery struct {
	HallName   string `form:"hall_name" binding:"required"`
	Month      int    `form:"month" binding:"required"`
	Day        int    `form:"day" binding:"required"`
	Year       int    `form:"year" binding:"required"`
	MealPeriod string `form:"meal_period" binding:"required"`
}

// GET /hall-meal-periods
func (ctl *MenuController) Periods(c *gin.Context) {
	var query periodsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	date := entity.MenuDate{Day: query.Day, Month: query.Month, Year: query.Year}
	periods, err := ctl.Menus.ResolvePeriods(query.HallName, date)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"periods": periods})
}

// GET /menu
func (ctl *MenuController) Get(c *gin.Context) {
	var query menuQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if !entity.MealPeriod(query.MealPeriod).Valid() {
		resp.BadRequest(c, "unknown meal period")
		return
	}

	date := entity.MenuDate{
		Day:        query.Day,
		Month:      query.Month,
		Year:       query.Year,
		MealPeriod: query.MealPeriod,
	}
	menu, err := ctl.Menus.LoadMenu(query.HallName, date)
	if err != nil {
		if errors.Is(err, services.ErrMenuNotFound) {
			resp.NotFound(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}

	resp.OK(c, gin.H{"menu": menu})
}
