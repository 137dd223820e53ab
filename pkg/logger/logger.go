package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/btoksoz/tatli-panel/pkg/config"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// InitLogger builds the process-wide logger from configuration.
func InitLogger(cfg *config.Config) {
	once.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		if level, err := zapcore.ParseLevel(cfg.Log.Level); err == nil {
			zc.Level = zap.NewAtomicLevelAt(level)
		}
		logger, err := zc.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
		zap.ReplaceGlobals(logger)
	})
}

// GetLogger returns the process-wide logger, building a default one if
// InitLogger was never called.
func GetLogger() *zap.Logger {
	once.Do(func() {
		zc := zap.NewProductionConfig()
		zc.OutputPaths = []string{"stdout"}
		logger, err := zc.Build()
		if err != nil {
			panic(err)
		}
		instance = logger
	})
	return instance
}
