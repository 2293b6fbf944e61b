package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"regboard/config"
	"regboard/routes"
	"regboard/utils"
)

// newTestApp builds the full route table over a fresh in-memory database.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// A second pooled connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("getting sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := utils.Migrate(db); err != nil {
		t.Fatalf("migrating test database: %v", err)
	}

	cfg := &config.Config{
		ServerPort: "5001",
		BcryptCost: bcrypt.MinCost,
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	app := fiber.New()
	routes.SetupRoutes(app, db, cfg, logger)

	return app, db
}

func postJSON(t *testing.T, app *fiber.App, path string, body map[string]interface{}) (int, map[string]interface{}) {
	t.Helper()

	jsonData, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp.StatusCode, result
}

func registerUser(t *testing.T, app *fiber.App, email string) {
	t.Helper()

	status, result := postJSON(t, app, "/api/submit-form", registrationForm(email))
	if status != http.StatusOK {
		t.Fatalf("registering %s: status %d, body %v", email, status, result)
	}
}

func registrationForm(email string) map[string]interface{} {
	return map[string]interface{}{
		"name":                "Test User",
		"phone":               "9999999999",
		"state":               "Kerala",
		"district":            "Ernakulam",
		"representative_type": "college",
		"college":             "Test College",
		"year_of_study":       "2",
		"email":               email,
		"password":            "pw1234",
	}
}

func createTask(t *testing.T, app *fiber.App, title string, points int) float64 {
	t.Helper()

	status, _ := postJSON(t, app, "/api/admin/upload-task", map[string]interface{}{
		"title":       title,
		"description": "D",
		"points":      points,
	})
	if status != http.StatusOK {
		t.Fatalf("creating task %s: status %d", title, status)
	}

	_, result := getJSON(t, app, "/api/tasks")
	tasks := result["tasks"].([]interface{})
	for _, raw := range tasks {
		task := raw.(map[string]interface{})
		if task["title"] == title {
			return task["id"].(float64)
		}
	}
	t.Fatalf("task %s not found in listing", title)
	return 0
}
