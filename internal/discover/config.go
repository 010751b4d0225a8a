// Package discover implements the two-phase network sweep and the worker
// pool that classifies discovered hosts into video endpoint records.
package discover

import (
	"time"

	"github.com/spf13/viper"
)

// DefaultPorts are the TCP ports probed on every phase-2 candidate:
// HTTP, HTTPS, SIP, SIP/TLS, and H.323 call signaling.
var DefaultPorts = []int{80, 443, 5060, 5061, 1720}

// sipPorts are the cheap phase-1 pre-filter: SIP presence is a strong hint
// for conferencing-adjacent hardware.
var sipPorts = []int{5060, 5061}

// Config holds discovery tuning. Zero values are replaced by defaults.
type Config struct {
	Ports         []int         `mapstructure:"ports"`
	ProbeTimeout  time.Duration `mapstructure:"probe_timeout"`
	HTTPTimeout   time.Duration `mapstructure:"http_timeout"`
	DNSTimeout    time.Duration `mapstructure:"dns_timeout"`
	Concurrency   int           `mapstructure:"concurrency"`
	Workers       int           `mapstructure:"workers"`
	ProbeRate     float64       `mapstructure:"probe_rate"`
	PingPrefilter bool          `mapstructure:"ping_prefilter"`
	PingTimeout   time.Duration `mapstructure:"ping_timeout"`
	PingCount     int           `mapstructure:"ping_count"`
}

// DefaultConfig returns the default discovery configuration.
func DefaultConfig() Config {
	return Config{
		Ports:        DefaultPorts,
		ProbeTimeout: 500 * time.Millisecond,
		HTTPTimeout:  5 * time.Second,
		DNSTimeout:   500 * time.Millisecond,
		Concurrency:  20,
		Workers:      4,
		PingTimeout:  2 * time.Second,
		PingCount:    1,
	}
}

// ConfigFromViper reads the discovery section of the application config.
func ConfigFromViper(v *viper.Viper) Config {
	cfg := DefaultConfig()
	if sub := v.Sub("discovery"); sub != nil {
		_ = sub.Unmarshal(&cfg)
	}
	return cfg.withDefaults()
}

// withDefaults replaces zero values with the documented defaults.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if len(c.Ports) == 0 {
		c.Ports = d.Ports
	}
	if c.ProbeTimeout <= 0 {
		c.ProbeTimeout = d.ProbeTimeout
	}
	if c.HTTPTimeout <= 0 {
		c.HTTPTimeout = d.HTTPTimeout
	}
	if c.DNSTimeout <= 0 {
		c.DNSTimeout = d.DNSTimeout
	}
	if c.Concurrency <= 0 {
		c.Concurrency = d.Concurrency
	}
	if c.Workers <= 0 {
		c.Workers = d.Workers
	}
	if c.PingTimeout <= 0 {
		c.PingTimeout = d.PingTimeout
	}
	if c.PingCount <= 0 {
		c.PingCount = d.PingCount
	}
	return c
}
