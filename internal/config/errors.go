// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, empty HTTP address or negative timeouts).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidValidationConfigs indicates invalid rejection settings
	// (for example, a status code outside 400-599).
	ErrInvalidValidationConfigs = errors.New("invalid validation configuration")
)

// ErrInvalidProbeConfigs indicates an empty probe target or a non-positive
// probe timeout.
var ErrInvalidProbeConfigs = errors.New("invalid probe configuration")
