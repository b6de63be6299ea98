// Package config defines the application configuration structures and the
// loading and conversion of YAML scenario files into engine inputs.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/iwvelando/mortgage-calc/pkg/constants"
)

// Configuration holds all application configuration for mortgage-calc.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Server  ServerConfig  `yaml:"server,omitempty"`
	Cache   CacheConfig   `yaml:"cache,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// ServerConfig holds HTTP API configuration options
type ServerConfig struct {
	Address      string `yaml:"address,omitempty"`
	MaxBodyBytes int64  `yaml:"maxBodyBytes,omitempty"`
}

// CacheConfig holds memoization configuration options
type CacheConfig struct {
	Enabled      bool   `yaml:"enabled,omitempty"`
	Backend      string `yaml:"backend,omitempty"` // memory, redis
	RedisAddress string `yaml:"redisAddress,omitempty"`
	TTLSeconds   int    `yaml:"ttlSeconds,omitempty"`
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := v.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.applyDefaults()
	return &configuration, nil
}

func (conf *Configuration) applyDefaults() {
	if conf.Server.Address == "" {
		conf.Server.Address = constants.DefaultServerAddress
	}
	if conf.Server.MaxBodyBytes <= 0 {
		conf.Server.MaxBodyBytes = constants.DefaultMaxBodyBytes
	}
	if conf.Cache.Backend == "" {
		conf.Cache.Backend = "memory"
	}
	if conf.Cache.TTLSeconds <= 0 {
		conf.Cache.TTLSeconds = constants.DefaultCacheTTLSeconds
	}
	if conf.Output.Format == "" {
		conf.Output.Format = constants.OutputFormatPretty
	}
}
