package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/models"
	"regboard/utils"
)

type LeaderboardController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewLeaderboardController(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *LeaderboardController {
	return &LeaderboardController{DB: db, Cfg: cfg, Logger: logger}
}

// GetLeaderboard godoc
// @Summary Get the leaderboard
// @Description Returns leaderboard entries ordered by total points descending
// @Tags leaderboard
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/leaderboard [get]
func (lc *LeaderboardController) GetLeaderboard(c *fiber.Ctx) error {
	var entries []models.LeaderboardEntry
	if err := lc.DB.Order("total_points desc").Find(&entries).Error; err != nil {
		return utils.ServerError(c, lc.Logger, "fetching leaderboard", err)
	}

	// Display fields are resolved per entry; a missing user must not take
	// the whole leaderboard down.
	list := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		name := "Unknown User"
		college := "Unknown College"

		var user models.User
		if err := lc.DB.Where("email = ?", entry.UserEmail).First(&user).Error; err == nil {
			name = user.Name
			college = user.College
		}

		list = append(list, fiber.Map{
			"name":    name,
			"college": college,
			"points":  entry.TotalPoints,
		})
	}

	return utils.Success(c, fiber.Map{"leaderboard": list})
}
