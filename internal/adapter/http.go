// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-req-validator/internal/config"
	"github.com/MKhiriev/go-req-validator/internal/logger"
	"github.com/MKhiriev/go-req-validator/models"
	"github.com/go-resty/resty/v2"
)

type httpProber struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPProber constructs a resty-based [Prober]. cfg.Address may omit the
// scheme, in which case http is assumed.
func NewHTTPProber(cfg config.ProbeConfig, logger *logger.Logger) (Prober, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid probe address: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = config.DefaultProbeTimeout
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpProber{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Probe implements [Prober].
func (p *httpProber) Probe(ctx context.Context, req ProbeRequest) (ProbeResult, error) {
	start := time.Now()

	r := p.client.R().SetContext(ctx)
	if len(req.Query) > 0 {
		r.SetQueryParamsFromValues(req.Query)
	}
	switch {
	case req.JSON != nil:
		r.SetHeader("Content-Type", "application/json").SetBody(req.JSON)
	case req.Form != nil:
		r.SetFormDataFromValues(req.Form)
	}

	resp, err := r.Execute(req.method(), req.Path)
	if err != nil {
		return ProbeResult{}, fmt.Errorf("probe %s %s: %w", req.method(), req.Path, err)
	}

	result := ProbeResult{Status: resp.StatusCode()}
	if !result.Passed() {
		result.Error = rejectionMessage(resp.Body())
	}

	p.logger.Debug().
		Str("method", req.method()).
		Str("path", req.Path).
		Int("status", result.Status).
		Dur("duration", time.Since(start)).
		Msg("probe finished")

	return result, nil
}

// rejectionMessage extracts the error field of a rejection body. Bodies that
// are not the validator's JSON payload are returned as trimmed text.
func rejectionMessage(body []byte) string {
	var payload struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Error != "" {
		return payload.Error
	}
	return strings.TrimSpace(string(body))
}

type versionPayload struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// Version implements [Prober].
func (p *httpProber) Version(ctx context.Context) (models.AppBuildInfo, error) {
	resp, err := p.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("version request: %w", err)
	}
	if resp.IsError() {
		return models.AppBuildInfo{}, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode())
	}

	var v versionPayload
	if err = json.Unmarshal(resp.Body(), &v); err != nil {
		return models.AppBuildInfo{}, fmt.Errorf("%w: %w", ErrDecodingResponse, err)
	}

	return models.NewAppBuildInfo(v.Version, v.Date, v.Commit), nil
}
