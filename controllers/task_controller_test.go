package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUploadTask(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := postJSON(t, app, "/api/admin/upload-task", map[string]interface{}{
		"title":          "T1",
		"description":    "D",
		"points":         20,
		"submissionType": "individual",
	})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Task uploaded successfully", result["message"])
}

func TestUploadTaskMissingFields(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := postJSON(t, app, "/api/admin/upload-task", map[string]interface{}{
		"title":       "T1",
		"description": "D",
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Please provide all required fields", result["message"])
}

func TestUploadTaskZeroPoints(t *testing.T) {
	app, _ := newTestApp(t)

	// Presence is checked, value is not: zero and negative points pass.
	status, _ := postJSON(t, app, "/api/admin/upload-task", map[string]interface{}{
		"title":       "Zero",
		"description": "D",
		"points":      0,
	})
	assert.Equal(t, http.StatusOK, status)

	status, _ = postJSON(t, app, "/api/admin/upload-task", map[string]interface{}{
		"title":       "Negative",
		"description": "D",
		"points":      -5,
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestListTasks(t *testing.T) {
	app, _ := newTestApp(t)

	createTask(t, app, "First", 10)
	createTask(t, app, "Second", 20)

	status, result := getJSON(t, app, "/api/tasks")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", result["status"])

	tasks := result["tasks"].([]interface{})
	assert.Len(t, tasks, 2)

	first := tasks[0].(map[string]interface{})
	assert.Equal(t, "First", first["title"])
	assert.Equal(t, "D", first["description"])
	assert.Equal(t, float64(10), first["points"])
	assert.NotEmpty(t, first["id"])
}
