// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "DSAKIT_CONFIG_PATH"

func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the application configuration directory.
// DSAKIT_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Dsakit))
}

// Cache resolves the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Dsakit))
}

// Logs resolves the directory holding daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Scripts resolves the directory where "script new" places scaffolded Lua scripts.
func Scripts() string {
	return ensureDir(filepath.Join(Config(), "scripts"))
}

// History resolves the file holding remembered interactive instructions.
func History() string {
	return filepath.Join(Cache(), "history.json")
}
