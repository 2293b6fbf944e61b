package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// InitLogger инициализирует и возвращает логгер
func InitLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
	logger.SetLevel(logrus.InfoLevel)
	return logger
}
