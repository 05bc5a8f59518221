// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the validation server.
//
// It wires the chi router, the demo routes, the version endpoint and any
// routes loaded from a route table. Cross-cutting concerns such as request
// tracing, access logging and method checks are handled here before a
// request reaches a validation gate.
package http
