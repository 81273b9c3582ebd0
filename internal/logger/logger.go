package logger

import (
	"github.com/sirupsen/logrus"

	"github.com/estrys/fediprofile/internal/config"
)

type Logger interface {
	logrus.FieldLogger
}

type logger struct {
	logrus.FieldLogger
}

func CreateLogger(config *config.Config) *logger {
	log := logrus.New()
	log.Formatter = &logrus.TextFormatter{
		DisableQuote: true,
	}
	log.SetLevel(config.LogLevel)
	return &logger{
		FieldLogger: log,
	}
}
