package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// Все ответы имеют единую форму: {"status": "success"|"error", ...}

// Success создает успешный JSON ответ с дополнительными полями
func Success(c *fiber.Ctx, data fiber.Map) error {
	payload := fiber.Map{"status": "success"}
	for k, v := range data {
		payload[k] = v
	}
	return c.JSON(payload)
}

// Message отправляет успешный ответ, содержащий только сообщение
func Message(c *fiber.Ctx, message string) error {
	return Success(c, fiber.Map{"message": message})
}

// Error создает JSON ответ с ошибкой
func Error(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}

// BadRequest отправляет ответ 400 Bad Request
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// NotFound отправляет ответ 404 Not Found
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// ServerError логирует ошибку хранилища и отправляет ответ 500
func ServerError(c *fiber.Ctx, logger *logrus.Logger, op string, err error) error {
	logger.WithError(err).Errorf("Error during %s", op)
	return Error(c, fiber.StatusInternalServerError, "Server error")
}
