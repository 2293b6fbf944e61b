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

type SubmissionController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewSubmissionController(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *SubmissionController {
	return &SubmissionController{DB: db, Cfg: cfg, Logger: logger}
}

type SubmitTaskInput struct {
	Email  string `json:"email"`
	TaskID uint   `json:"taskId"`
	Link   string `json:"link"`
}

// SubmitTask godoc
// @Summary Submit a task link
// @Description Records a user's submission for a task; one submission per user and task
// @Tags submissions
// @Accept json
// @Produce json
// @Param input body SubmitTaskInput true "Submission data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/submit-task [post]
func (sc *SubmissionController) SubmitTask(c *fiber.Ctx) error {
	var input SubmitTaskInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	if input.Email == "" || input.TaskID == 0 || input.Link == "" {
		return utils.BadRequest(c, "Please provide all required fields")
	}

	// Both referenced records must exist
	var user models.User
	if err := sc.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Invalid user or task")
		}
		return utils.ServerError(c, sc.Logger, "submitting task", err)
	}
	var task models.Task
	if err := sc.DB.First(&task, input.TaskID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Invalid user or task")
		}
		return utils.ServerError(c, sc.Logger, "submitting task", err)
	}

	var existing models.Submission
	err := sc.DB.Where("user_email = ? AND task_id = ?", input.Email, input.TaskID).
		First(&existing).Error
	if err == nil {
		return utils.BadRequest(c, "Task already submitted")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ServerError(c, sc.Logger, "submitting task", err)
	}

	submission := models.Submission{
		UserEmail: input.Email,
		TaskID:    input.TaskID,
		Link:      input.Link,
	}

	if err := sc.DB.Create(&submission).Error; err != nil {
		// A concurrent duplicate passes the existence check but trips the
		// composite unique index.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return utils.BadRequest(c, "Task already submitted")
		}
		return utils.ServerError(c, sc.Logger, "submitting task", err)
	}

	return utils.Message(c, "Task submitted successfully")
}

type UpdatePointsInput struct {
	Email         string `json:"email"`
	TaskID        uint   `json:"taskId"`
	PointsAwarded *int   `json:"pointsAwarded"`
}

// UpdatePoints godoc
// @Summary Award points for a submission
// @Description Sets the submission's awarded points and adds them to the user's leaderboard total
// @Tags admin
// @Accept json
// @Produce json
// @Param input body UpdatePointsInput true "Award data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/admin/update-points [post]
func (sc *SubmissionController) UpdatePoints(c *fiber.Ctx) error {
	var input UpdatePointsInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Zero is a legal award, so check the field's presence, not its value.
	if input.Email == "" || input.TaskID == 0 || input.PointsAwarded == nil {
		return utils.BadRequest(c, "Please provide all required fields")
	}

	var submission models.Submission
	err := sc.DB.Where("user_email = ? AND task_id = ?", input.Email, input.TaskID).
		First(&submission).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.BadRequest(c, "Submission not found")
		}
		return utils.ServerError(c, sc.Logger, "updating points", err)
	}

	points := *input.PointsAwarded

	// The submission update and the leaderboard increment commit together
	// or not at all. Awarding the same submission again adds on top of the
	// running total rather than replacing it.
	err = sc.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&submission).Update("points_awarded", points).Error; err != nil {
			return err
		}

		var entry models.LeaderboardEntry
		if err := tx.Where("user_email = ?", input.Email).First(&entry).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
			entry = models.LeaderboardEntry{
				UserEmail:   input.Email,
				TotalPoints: points,
			}
			return tx.Create(&entry).Error
		}

		return tx.Model(&entry).
			Update("total_points", gorm.Expr("total_points + ?", points)).Error
	})
	if err != nil {
		return utils.ServerError(c, sc.Logger, "updating points", err)
	}

	return utils.Message(c, "Points updated successfully")
}
