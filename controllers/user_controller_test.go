package controllers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetProfile(t *testing.T) {
	app, _ := newTestApp(t)

	registerUser(t, app, "profile@example.com")

	status, result := getJSON(t, app, "/api/profile?email=profile@example.com")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "success", result["status"])

	profile := result["profile"].(map[string]interface{})
	assert.Equal(t, "Test User", profile["name"])
	assert.Equal(t, "profile@example.com", profile["email"])
	assert.Equal(t, "9999999999", profile["phone"])
	assert.Equal(t, "college", profile["representativeType"])
	assert.Equal(t, "Test College", profile["college"])
	assert.Equal(t, "Ernakulam", profile["district"])
	assert.Equal(t, "Kerala", profile["state"])

	// The hash must never be serialized in any shape
	assert.NotContains(t, profile, "password")
	assert.NotContains(t, profile, "passwordHash")
	assert.NotContains(t, profile, "password_hash")
}

func TestGetProfileMissingEmail(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := getJSON(t, app, "/api/profile")
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "Email is required", result["message"])
}

func TestGetProfileUnknownEmail(t *testing.T) {
	app, _ := newTestApp(t)

	status, result := getJSON(t, app, "/api/profile?email=nobody@example.com")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "User not found", result["message"])
}
