package guest

import (
	"strconv"

	"github.com/doorlist/doorlist/internal/model"
	"github.com/gofiber/fiber/v2"
)

// List returns one page of guests matching the search and status
// filters, plus list-wide stats which ignore the filters.
func (g *Controller) List(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(model.ResultsPerPage)))

	guests, err := g.repository.List(page, limit, c.Query("search"), c.Query("status"))
	if err != nil {
		return fiber.ErrInternalServerError
	}

	stats, err := g.repository.Stats()
	if err != nil {
		return fiber.ErrInternalServerError
	}

	return c.JSON(fiber.Map{
		"data": guests.Hits(),
		"pagination": fiber.Map{
			"total":      guests.TotalHits(),
			"page":       guests.Page(),
			"limit":      limit,
			"totalPages": guests.TotalPages(),
		},
		"stats": stats,
	})
}
