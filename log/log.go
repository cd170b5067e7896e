// Package log provides structured logging with filesystem-based persistence.
//
// Nothing is written unless "logs.write" is enabled; until then every call is a no-op.
package log

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/key"
	"github.com/dsakit/dsakit/where"
	logrus "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

var enabled bool

// Setup opens today's log file and configures formatting and severity from the global configuration.
func Setup() error {
	enabled = viper.GetBool(key.LogsWrite)
	if !enabled {
		return nil
	}

	dir := where.Logs()
	if dir == "" {
		return errors.New("log directory path is empty")
	}

	path := filepath.Join(dir, fmt.Sprintf("%s.log", time.Now().Format("2006-01-02")))
	f, err := filesystem.API().OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logrus.SetOutput(f)

	if viper.GetBool(key.LogsJson) {
		logrus.SetFormatter(&logrus.JSONFormatter{PrettyPrint: true})
	} else {
		logrus.SetFormatter(&logrus.TextFormatter{})
	}

	level, err := logrus.ParseLevel(viper.GetString(key.LogsLevel))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)

	return nil
}

// Enabled reports whether log output is active.
func Enabled() bool {
	return enabled
}

func Error(args ...any) {
	if enabled {
		logrus.Error(args...)
	}
}
func Errorf(format string, args ...any) {
	if enabled {
		logrus.Errorf(format, args...)
	}
}
func Warnf(format string, args ...any) {
	if enabled {
		logrus.Warnf(format, args...)
	}
}
func Info(args ...any) {
	if enabled {
		logrus.Info(args...)
	}
}
func Infof(format string, args ...any) {
	if enabled {
		logrus.Infof(format, args...)
	}
}
func Debugf(format string, args ...any) {
	if enabled {
		logrus.Debugf(format, args...)
	}
}

// Fields emits a debug entry carrying structured fields.
func Fields(fields map[string]any, msg string) {
	if enabled {
		logrus.WithFields(logrus.Fields(fields)).Debug(msg)
	}
}
