package utils

import (
	"os"

	"github.com/sirupsen/logrus"
)

// The loggers are usable from init on so library consumers that never call
// InitLogger still get output instead of a nil dereference. InitLogger only
// reconfigures them.
var (
	InfoLogger  = logrus.New()
	ErrorLogger = logrus.New()
)

func InitLogger() {
	InfoLogger.SetOutput(os.Stdout)
	InfoLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	ErrorLogger.SetOutput(os.Stderr)
	ErrorLogger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})

	InfoLogger.SetLevel(logrus.InfoLevel)
	ErrorLogger.SetLevel(logrus.ErrorLevel)

	if os.Getenv("CANTEEN_DEBUG") != "" {
		InfoLogger.SetLevel(logrus.DebugLevel)
	}
}
