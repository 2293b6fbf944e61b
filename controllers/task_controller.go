package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/models"
	"regboard/utils"
)

type TaskController struct {
	DB     *gorm.DB
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewTaskController(db *gorm.DB, cfg *config.Config, logger *logrus.Logger) *TaskController {
	return &TaskController{DB: db, Cfg: cfg, Logger: logger}
}

type UploadTaskInput struct {
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Deadline       *time.Time `json:"deadline"`
	Points         *int       `json:"points"`
	SubmissionType string     `json:"submissionType"`
}

// UploadTask godoc
// @Summary Upload a new task
// @Description Creates an admin-authored task; tasks are immutable once created
// @Tags admin
// @Accept json
// @Produce json
// @Param input body UploadTaskInput true "Task data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/admin/upload-task [post]
func (tc *TaskController) UploadTask(c *fiber.Ctx) error {
	var input UploadTaskInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	// Points is checked for presence, not value: no positivity rule applies.
	if input.Title == "" || input.Description == "" || input.Points == nil {
		return utils.BadRequest(c, "Please provide all required fields")
	}

	task := models.Task{
		Title:          input.Title,
		Description:    input.Description,
		Deadline:       input.Deadline,
		Points:         *input.Points,
		SubmissionType: input.SubmissionType,
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		return utils.ServerError(c, tc.Logger, "uploading task", err)
	}

	return utils.Message(c, "Task uploaded successfully")
}

// ListTasks godoc
// @Summary List all tasks
// @Description Returns every task in store order
// @Tags tasks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]interface{}
// @Router /api/tasks [get]
func (tc *TaskController) ListTasks(c *fiber.Ctx) error {
	var tasks []models.Task
	if err := tc.DB.Find(&tasks).Error; err != nil {
		return utils.ServerError(c, tc.Logger, "fetching tasks", err)
	}

	list := make([]fiber.Map, 0, len(tasks))
	for _, task := range tasks {
		list = append(list, fiber.Map{
			"id":             task.ID,
			"title":          task.Title,
			"description":    task.Description,
			"deadline":       task.Deadline,
			"points":         task.Points,
			"submissionType": task.SubmissionType,
			"created_at":     task.CreatedAt,
		})
	}

	return utils.Success(c, fiber.Map{"tasks": list})
}
