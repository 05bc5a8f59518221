// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"io"
	"net/url"

	"github.com/MKhiriev/go-req-validator/internal/adapter"
	"github.com/MKhiriev/go-req-validator/validator"
)

type scenario struct {
	name    string
	request adapter.ProbeRequest
	// wantField is the field a rejection must name; empty expects a pass.
	wantField string
}

func demoScenarios() []scenario {
	return []scenario{
		{
			name: "example-1 accepts a complete request",
			request: adapter.ProbeRequest{
				Path: "/example-1/7",
				JSON: map[string]any{"email": "a@b.c", "user": map[string]any{}},
			},
		},
		{
			name: "example-1 rejects a non-numeric id",
			request: adapter.ProbeRequest{
				Path: "/example-1/abc",
				JSON: map[string]any{"email": "a@b.c", "user": map[string]any{}},
			},
			wantField: "id",
		},
		{
			name: "example-1 reports the first missing field",
			request: adapter.ProbeRequest{
				Path: "/example-1/7",
				JSON: map[string]any{"user": "bob"},
			},
			wantField: "email",
		},
		{
			name: "example-2 accepts a JSON password",
			request: adapter.ProbeRequest{
				Path: "/example-2",
				JSON: map[string]any{"password": "hunter2"},
			},
		},
		{
			name: "example-2 accepts a form password",
			request: adapter.ProbeRequest{
				Path: "/example-2",
				Form: url.Values{"password": {"hunter2"}},
			},
		},
		{
			name: "example-2 rejects a numeric password",
			request: adapter.ProbeRequest{
				Path: "/example-2",
				JSON: map[string]any{"password": 12345},
			},
			wantField: "password",
		},
	}
}

// run executes scenarios in order and writes one line per scenario to out.
// It returns the number of scenarios whose outcome differed from the
// expectation. A transport error aborts the run.
func run(ctx context.Context, p adapter.Prober, scenarios []scenario, out io.Writer) (int, error) {
	info, err := p.Version(ctx)
	if err != nil {
		return 0, fmt.Errorf("error getting server version: %w", err)
	}
	fmt.Fprintf(out, "server version %s (commit %s)\n", info.BuildVersion(), info.BuildCommit())

	failed := 0
	for _, sc := range scenarios {
		res, err := p.Probe(ctx, sc.request)
		if err != nil {
			return failed, err
		}

		ok := matches(sc, res)
		if !ok {
			failed++
		}
		fmt.Fprintf(out, "%s %s: status %d %s\n", verdict(ok), sc.name, res.Status, res.Error)
	}

	return failed, nil
}

// matches expects rejections to carry the default field-specific message.
func matches(sc scenario, res adapter.ProbeResult) bool {
	if sc.wantField == "" {
		return res.Passed()
	}
	return !res.Passed() && res.Error == validator.FieldMessage(sc.wantField)
}

func verdict(ok bool) string {
	if ok {
		return "PASS"
	}
	return "FAIL"
}
