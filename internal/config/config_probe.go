// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// ProbeConfig configures the probe binary that exercises a running server.
type ProbeConfig struct {
	// Address of the server, "host:port" or a full base URL.
	// Env: PROBE_ADDRESS
	Address string `env:"PROBE_ADDRESS"`

	// Timeout bounds every probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"PROBE_TIMEOUT"`

	// LogLevel is a zerolog level name.
	// Env: LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// DefaultProbeTimeout is used when no probe timeout is configured.
const DefaultProbeTimeout = 5 * time.Second

// GetProbeConfig merges defaults, environment variables and args, in that
// order, into a [ProbeConfig].
//
// Flags:
//
//	-a server address
//	-timeout request timeout (e.g., "5s")
//	-log-level zerolog level name
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	cfg := &ProbeConfig{
		Address:  DefaultHTTPAddress,
		Timeout:  DefaultProbeTimeout,
		LogLevel: DefaultLogLevel,
	}

	envCfg := &ProbeConfig{}
	if err := env.Parse(envCfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	flagCfg := &ProbeConfig{}
	fs := flag.NewFlagSet("probe", flag.ContinueOnError)
	fs.StringVar(&flagCfg.Address, "a", "", "Server address")
	fs.DurationVar(&flagCfg.Timeout, "timeout", 0, "Request timeout (e.g., 5s)")
	fs.StringVar(&flagCfg.LogLevel, "log-level", "", "Log level (debug, info, warn, error)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	for _, layer := range []*ProbeConfig{envCfg, flagCfg} {
		if err := mergo.Merge(cfg, layer, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if cfg.Address == "" || cfg.Timeout <= 0 {
		return nil, ErrInvalidProbeConfigs
	}

	return cfg, nil
}
