package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"

	"github.com/ytget/todo/internal/platform"
	"github.com/ytget/todo/internal/submit"
)

// Config keys, also used as flag names
const (
	KeyPath     = "path"
	KeyEndpoint = "endpoint"
	KeyTimeout  = "timeout"
)

// EnvPrefix prefixes every environment override, e.g. TODO_PATH
const EnvPrefix = "TODO"

// Config is the resolved command line configuration
type Config struct {
	Path     string
	Endpoint string
	Timeout  time.Duration
}

// newViper creates a viper instance with defaults and env binding
func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyPath, platform.DefaultStorePath)
	v.SetDefault(KeyEndpoint, submit.DefaultEndpoint)
	v.SetDefault(KeyTimeout, submit.DefaultTimeout)

	v.SetConfigName(".todo") // .yaml is implicit
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if override := os.Getenv(EnvPrefix + "_CONFIG_PATH"); override != "" {
		v.AddConfigPath(override)
	}
	v.AddConfigPath("./")
	return v
}

// loadConfig reads the optional config file and resolves the final values
func loadConfig(v *viper.Viper) (*Config, error) {
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return &Config{
		Path:     v.GetString(KeyPath),
		Endpoint: v.GetString(KeyEndpoint),
		Timeout:  v.GetDuration(KeyTimeout),
	}, nil
}
