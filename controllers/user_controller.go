package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/models"
	"regboard/utils"
)

type UserController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewUserController(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *UserController {
	return &UserController{DB: db, Cfg: cfg, Logger: logger}
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns the profile fields for a registered email
// @Tags users
// @Produce json
// @Param email query string true "Registered email"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/profile [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return utils.BadRequest(c, "Email is required")
	}

	var user models.User
	if err := uc.DB.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.NotFound(c, "User not found")
		}
		return utils.ServerError(c, uc.Logger, "fetching profile", err)
	}

	// Ответ без чувствительных данных
	return utils.Success(c, fiber.Map{
		"profile": fiber.Map{
			"name":               user.Name,
			"email":              user.Email,
			"phone":              user.Phone,
			"representativeType": user.RepresentativeType,
			"college":            user.College,
			"district":           user.District,
			"state":              user.State,
		},
	})
}
