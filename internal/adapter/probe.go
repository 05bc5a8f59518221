// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"net/http"
	"net/url"
)

// ProbeRequest describes one request against the server.
type ProbeRequest struct {
	// Method defaults to POST.
	Method string
	// Path is appended to the base URL, pattern parameters already filled in.
	Path string
	// Query is encoded into the URL.
	Query url.Values
	// JSON, when non-nil, is sent as an application/json body.
	JSON any
	// Form, when non-nil and JSON is nil, is sent urlencoded.
	Form url.Values
}

// ProbeResult is the server's answer to a probe.
type ProbeResult struct {
	Status int
	// Error is the rejection message, empty when the request passed.
	Error string
}

// Passed reports whether the request got past the validation gate.
func (r ProbeResult) Passed() bool {
	return r.Status >= http.StatusOK && r.Status < http.StatusMultipleChoices
}

func (r ProbeRequest) method() string {
	if r.Method == "" {
		return http.MethodPost
	}
	return r.Method
}
