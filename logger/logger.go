package logger

import (
	"os"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	global *zap.Logger
	once   sync.Once
)

// Init initializes the global logger. Production builds get the JSON
// encoder, everything else the human-readable development encoder.
func Init() {
	once.Do(func() {
		var err error
		if os.Getenv("ENV") == "production" {
			global, err = zap.NewProduction()
		} else {
			global, err = zap.NewDevelopment()
		}
		if err != nil {
			panic("failed to initialize logger: " + err.Error())
		}
	})
}

// L returns the global logger instance.
func L() *zap.Logger {
	if global == nil {
		Init()
	}
	return global
}

// Close flushes any buffered log entries.
func Close() {
	_ = L().Sync()
}

// Global logging helpers to avoid `logger.L().Info` repetition

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	L().Fatal(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	L().Debug(msg, fields...)
}
