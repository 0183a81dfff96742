package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

func NewLogger(config Config) (*logrus.Entry, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	return logrus.NewEntry(logger), nil
}
