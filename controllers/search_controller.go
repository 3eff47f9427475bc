package controllers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/gsonntag/bruinbite/pkg/resp"
	"github.com/gsonntag/bruinbite/repository"
	"github.com/gsonntag/bruinbite/search"
)

const dishSearchLimit = 25

type SearchController struct {
	Index   *search.DishIndex
	Dishes  *repository.DishRepository
	Indexer *search.Indexer
}

func NewSearchController(index *search.DishIndex, dishes *repository.DishRepository, indexer *search.Indexer) *SearchController {
	return &SearchController{Index: index, Dishes: dishes, Indexer: indexer}
}

// dishResult is one search hit enriched with the live average rating.
type dishResult struct {
	ID            uint    `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	HallID        uint    `json:"hall_id"`
	HallName      string  `json:"hall_name"`
	Location      string  `json:"location"`
	AverageRating float64 `json:"average_rating"`
}

// GET /search?keyword=&hall=
func (ctl *SearchController) Search(c *gin.Context) {
	keyword := strings.TrimSpace(c.Query("keyword"))
	if keyword == "" {
		resp.BadRequest(c, "keyword is required")
		return
	}
	hall := strings.TrimSpace(c.Query("hall"))

	docs, err := ctl.Index.Search(keyword, hall, dishSearchLimit)
	if err != nil {
		resp.ServerError(c, err)
		return
	}

	results := make([]dishResult, 0, len(docs))
	for _, doc := range docs {
		result := dishResult{
			Name:        doc.Name,
			Description: doc.Description,
			HallID:      doc.HallID,
			HallName:    doc.HallName,
			Location:    doc.Location,
		}
		if id, err := strconv.ParseUint(doc.ID, 10, 64); err == nil {
			result.ID = uint(id)
			// ratings live in the database, not the index
			if dish, err := ctl.Dishes.FindByID(uint(id)); err == nil {
				result.AverageRating = dish.AverageRating
			}
		}
		results = append(results, result)
	}

	resp.OK(c, gin.H{"dishes": results})
}

// POST /admin/reindex (admin)
func (ctl *SearchController) Reindex(c *gin.Context) {
	if err := ctl.Indexer.ReindexAll(); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Message(c, "reindex complete")
}
