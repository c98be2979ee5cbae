// logger/logger.go
package logger

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	Logger *logrus.Logger
	once   sync.Once
)

// GetLogger returns the singleton logger instance
func GetLogger() *logrus.Logger {
	once.Do(func() {
		Logger = logrus.New()
		Logger.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
		})
		Logger.SetOutput(os.Stdout)
		Logger.SetLevel(logrus.InfoLevel)
	})
	return Logger
}

// SetLevel switches the singleton to the named level, ignoring unknown names.
func SetLevel(name string) {
	level, err := logrus.ParseLevel(name)
	if err != nil {
		GetLogger().Warnf("unknown log level %q, keeping %s", name, GetLogger().GetLevel())
		return
	}
	GetLogger().SetLevel(level)
}
