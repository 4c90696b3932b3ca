package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init initializes the global logger. Production gets JSON output,
// everything else gets the human-readable development encoder.
func Init() {
	var (
		l   *zap.Logger
		err error
	)
	if os.Getenv("ENV") == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = l
}

func ensure() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}

// Close flushes buffered log entries.
func Close() {
	_ = ensure().Sync()
}

func Info(msg string, fields ...zapcore.Field)  { ensure().Info(msg, fields...) }
func Warn(msg string, fields ...zapcore.Field)  { ensure().Warn(msg, fields...) }
func Error(msg string, fields ...zapcore.Field) { ensure().Error(msg, fields...) }
func Debug(msg string, fields ...zapcore.Field) { ensure().Debug(msg, fields...) }
func Fatal(msg string, fields ...zapcore.Field) { ensure().Fatal(msg, fields...) }
