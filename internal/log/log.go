// Package log configures the process-wide logrus logger.
package log

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config selects level, format and an optional rotating file appender.
type Config struct {
	Level  string      `mapstructure:"level"`  // trace|debug|info|warn|error
	Format string      `mapstructure:"format"` // text|json
	File   *FileConfig `mapstructure:"file"`
}

// FileConfig are the rotation options, passed through to lumberjack.
type FileConfig struct {
	Filename   string `mapstructure:"filename"`
	MaxSize    int    `mapstructure:"max_size"` // MB
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"` // days
	Compress   bool   `mapstructure:"compress"`
}

var (
	once   sync.Once
	logger = logrus.New()
)

// L returns the package logger. Before Init it logs at info level to stderr.
func L() *logrus.Logger {
	return logger
}

// Init applies cfg to the package logger. A nil cfg keeps the defaults.
// Only the first call takes effect.
func Init(cfg *Config) error {
	var initErr error
	once.Do(func() {
		if cfg == nil {
			return
		}
		if cfg.Level != "" {
			level, err := logrus.ParseLevel(cfg.Level)
			if err != nil {
				initErr = fmt.Errorf("log: parse level: %w", err)
				return
			}
			logger.SetLevel(level)
		}
		if cfg.Format == "json" {
			logger.SetFormatter(&logrus.JSONFormatter{})
		} else {
			logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		}
		if cfg.File != nil && cfg.File.Filename != "" {
			rotated := &lumberjack.Logger{
				Filename:   cfg.File.Filename,
				MaxSize:    cfg.File.MaxSize,
				MaxBackups: cfg.File.MaxBackups,
				MaxAge:     cfg.File.MaxAge,
				Compress:   cfg.File.Compress,
			}
			logger.SetOutput(io.MultiWriter(os.Stderr, rotated))
		}
	})
	return initErr
}
