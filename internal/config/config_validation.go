// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] can start the
// server.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Server.RequestTimeout < 0 || cfg.Server.ShutdownTimeout < 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Validation.StatusCode != 0 && (cfg.Validation.StatusCode < 400 || cfg.Validation.StatusCode > 599) {
		return ErrInvalidValidationConfigs
	}

	if cfg.Validation.MaxBodyBytes < 0 {
		return ErrInvalidValidationConfigs
	}

	return nil
}
