// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrNilValidator is returned by Init when the handler has no base
	// validator to configure gates from.
	ErrNilValidator = errors.New("handler requires a validator")

	// ErrMountingRoutes wraps failures of the route table.
	ErrMountingRoutes = errors.New("error mounting route table")
)
