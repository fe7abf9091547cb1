package controllers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/ManuelReschke/NewsFox/internal/pkg/statistics"
)

// invalidateStatistics drops the cached counters after a content write
var invalidateStatistics = statistics.Invalidate

// StatsController serves the content counters of the editor dashboard
type StatsController struct {
	db *gorm.DB
}

func NewStatsController(db *gorm.DB) *StatsController {
	return &StatsController{db: db}
}

func (sc *StatsController) HandleGet(c *fiber.Ctx) error {
	stats, err := statistics.GetStatistics(c.UserContext(), sc.db)
	if err != nil {
		return handleError(c, err)
	}
	return c.JSON(stats)
}
