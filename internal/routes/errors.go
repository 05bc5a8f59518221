// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import "errors"

var (
	// ErrInvalidMethod is returned for a route with an unsupported HTTP method.
	ErrInvalidMethod = errors.New("invalid route method")
	// ErrInvalidPattern is returned for a route pattern not starting with "/".
	ErrInvalidPattern = errors.New("route pattern must start with /")
	// ErrDuplicateRoute is returned when a method and pattern appear twice.
	ErrDuplicateRoute = errors.New("duplicate route")
)
