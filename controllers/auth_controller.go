package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/models"
	"regboard/utils"
)

type AuthController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewAuthController(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *AuthController {
	return &AuthController{DB: db, Cfg: cfg, Logger: logger}
}

type RegisterInput struct {
	Name               string `json:"name"`
	Phone              string `json:"phone"`
	State              string `json:"state"`
	District           string `json:"district"`
	RepresentativeType string `json:"representative_type"`
	College            string `json:"college"`
	School             string `json:"school"`
	YearOfStudy        string `json:"year_of_study"`
	Email              string `json:"email"`
	Password           string `json:"password"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account from the registration form
// @Tags auth
// @Accept json
// @Produce json
// @Param input body RegisterInput true "Registration form data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/submit-form [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Name == "" || input.Phone == "" || input.Email == "" || input.Password == "" ||
		input.State == "" || input.District == "" || input.RepresentativeType == "" ||
		input.YearOfStudy == "" {
		return utils.BadRequest(c, "Please fill out all required fields")
	}

	// Check if the user already exists
	var existing models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		return utils.BadRequest(c, "User already exists")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ServerError(c, ac.Logger, "registration", err)
	}

	// Hash password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), ac.Cfg.BcryptCost)
	if err != nil {
		return utils.ServerError(c, ac.Logger, "registration", err)
	}

	// Affiliation field is kept only when it matches the representative type
	college := ""
	school := ""
	if input.RepresentativeType == models.RepresentativeCollege {
		college = input.College
	}
	if input.RepresentativeType == models.RepresentativeSchool {
		school = input.School
	}

	user := models.User{
		Name:               input.Name,
		Phone:              input.Phone,
		State:              input.State,
		District:           input.District,
		RepresentativeType: input.RepresentativeType,
		College:            college,
		School:             school,
		YearOfStudy:        input.YearOfStudy,
		Email:              input.Email,
		PasswordHash:       string(hashedPassword),
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		// The unique index catches a concurrent registration that slipped
		// past the existence check above.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest(c, "User already exists")
		}
		return utils.ServerError(c, ac.Logger, "registration", err)
	}

	return utils.Message(c, "Registration successful")
}

type SignInInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignIn godoc
// @Summary User sign-in
// @Description Verifies a credential pair; no session or token is issued
// @Tags auth
// @Accept json
// @Produce json
// @Param input body SignInInput true "Sign-in credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/sign-in [post]
func (ac *AuthController) SignIn(c *fiber.Ctx) error {
	var input SignInInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Find the user by email
	var user models.User
	if err := ac.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "User not found")
		}
		return utils.ServerError(c, ac.Logger, "sign-in", err)
	}

	// Check password
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.BadRequest(c, "Invalid credentials")
	}

	return utils.Message(c, "Login successful")
}
