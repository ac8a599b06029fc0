package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Log is the application-wide logger. It is a no-op until InitLogger is called.
var Log = zap.NewNop()

func InitLogger(level string) error {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = lvl
	logger, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	Log = logger
	return nil
}
