package config

import (
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

// Logger returns the process-wide logrus instance.
func Logger() *logrus.Logger {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
