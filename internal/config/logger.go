package config

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// NewLogger builds the application logger. The terminal belongs to the UI, so
// output goes to Log.File as JSON; with no file configured logging is off.
func (c LogConfig) NewLogger() (*zap.Logger, error) {
	if c.File == "" {
		return zap.NewNop(), nil
	}
	if dir := filepath.Dir(c.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create log dir: %w", err)
		}
	}
	level, err := zap.ParseAtomicLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = level
	zc.OutputPaths = []string{c.File}
	zc.ErrorOutputPaths = []string{c.File}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return logger, nil
}
