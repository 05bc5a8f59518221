// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the validation server's HTTP
// contract.
//
// [Prober] sends one request to a running server and reports how the
// validation gate answered: the status code and, for rejections, the
// message carried in the {"error": ...} body. The HTTP implementation is
// built on resty ([NewHTTPProber]).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-req-validator/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/prober_mock.go -package=mock

// Prober talks to a running validation server.
type Prober interface {
	// Probe sends req and reports the response status and rejection message.
	// Transport failures are returned as errors; any HTTP status, including
	// a rejection, is a successful probe.
	Probe(ctx context.Context, req ProbeRequest) (ProbeResult, error)

	// Version fetches the server build metadata from GET /api/version/.
	Version(ctx context.Context) (models.AppBuildInfo, error)
}
