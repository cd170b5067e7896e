// Package config provides centralized management for application settings, defaults, and the Viper-based configuration engine.
package config

import (
	"errors"
	"strings"

	"github.com/dsakit/dsakit/constant"
	"github.com/dsakit/dsakit/filesystem"
	"github.com/dsakit/dsakit/where"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable naming conventions.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Setup initializes the global configuration state: defaults, environment bindings and the optional TOML file.
func Setup() error {
	viper.SetConfigName(constant.Dsakit)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Dsakit)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// Reset restores the factory default of a single key in the running configuration.
func Reset(key string) bool {
	field, ok := Default[key]
	if !ok {
		return false
	}

	viper.Set(key, field.Value)
	return true
}

// Write persists the running configuration, creating the file on first use.
func Write() error {
	err := viper.WriteConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
