// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	// ErrNoAddress is returned by NewServer when no listen address is set.
	ErrNoAddress = errors.New("no server address configured")
	// ErrNilHandler is returned by NewServer without a root handler.
	ErrNilHandler = errors.New("no http handler provided")
)
