// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport of the validation server.
//
// It owns the listener lifecycle: startup, signal handling, and graceful
// shutdown bounded by the configured shutdown timeout.
package server
