// Package config loads roomscout configuration from file, environment, and
// defaults, and builds the application logger from it.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Load reads configuration from an optional YAML file and environment
// variables. When configPath is empty, a roomscout.yaml is searched in the
// working directory, ./configs, and /etc/roomscout. A missing config file is
// not an error; defaults apply.
func Load(configPath string) (*viper.Viper, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	v.SetDefault("discovery.ports", []int{80, 443, 5060, 5061, 1720})
	v.SetDefault("discovery.probe_timeout", "500ms")
	v.SetDefault("discovery.http_timeout", "5s")
	v.SetDefault("discovery.concurrency", 20)
	v.SetDefault("discovery.workers", 4)
	v.SetDefault("discovery.probe_rate", 0)
	v.SetDefault("discovery.ping_prefilter", false)
	v.SetDefault("discovery.ping_timeout", "2s")
	v.SetDefault("discovery.ping_count", 1)
	v.SetDefault("discovery.dns_timeout", "500ms")

	v.SetDefault("auth.username", "admin")
	v.SetDefault("auth.password", "TANDBERG")
	v.SetDefault("auth.rotate", true)

	v.SetDefault("cache.path", "")

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("roomscout")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("/etc/roomscout")
	}

	// Environment variable support: RS_DISCOVERY_CONCURRENCY=64
	v.SetEnvPrefix("RS")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is fine -- use defaults
	}

	return v, nil
}
