// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package routes

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/MKhiriev/go-req-validator/validator"
	"github.com/go-chi/chi/v5"
	"gopkg.in/yaml.v3"
)

var allowedMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodPost:    {},
	http.MethodPut:     {},
	http.MethodPatch:   {},
	http.MethodDelete:  {},
	http.MethodOptions: {},
}

// Table is a list of validated routes.
type Table struct {
	Routes []Route `yaml:"routes" json:"routes"`
}

// Route is one entry of a Table. Fields holds descriptors in their untyped
// shape: a field name or a [name, type, source] list.
type Route struct {
	Method  string `yaml:"method" json:"method"`
	Pattern string `yaml:"pattern" json:"pattern"`
	Status  int    `yaml:"status,omitempty" json:"status,omitempty"`
	Message string `yaml:"message,omitempty" json:"message,omitempty"`
	Fields  []any  `yaml:"fields" json:"fields"`
}

// Load reads a route table from a YAML or JSON file.
func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading route table: %w", err)
	}

	return Parse(data)
}

// Parse decodes a route table. JSON input is accepted since it is valid YAML.
func Parse(data []byte) (*Table, error) {
	var table Table
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("error decoding route table: %w", err)
	}

	return &table, nil
}

// Mount configures a gate for every route and registers h behind it. Route
// status and message override the settings of base. The first invalid
// route aborts mounting; routes registered before it stay on r.
func (t *Table) Mount(r chi.Router, base *validator.Validator, h http.Handler) error {
	seen := make(map[string]struct{}, len(t.Routes))

	for i, rt := range t.Routes {
		method := strings.ToUpper(strings.TrimSpace(rt.Method))
		if _, ok := allowedMethods[method]; !ok {
			return fmt.Errorf("route #%d: %w: %q", i, ErrInvalidMethod, rt.Method)
		}
		if !strings.HasPrefix(rt.Pattern, "/") {
			return fmt.Errorf("route #%d: %w: %q", i, ErrInvalidPattern, rt.Pattern)
		}

		key := method + " " + rt.Pattern
		if _, ok := seen[key]; ok {
			return fmt.Errorf("route #%d: %w: %s", i, ErrDuplicateRoute, key)
		}
		seen[key] = struct{}{}

		gate, err := base.With(
			validator.WithStatusCode(rt.Status),
			validator.WithMessage(rt.Message),
		).Configure(rt.Fields...)
		if err != nil {
			return fmt.Errorf("route %s: %w", key, err)
		}

		r.With(gate.Middleware).Method(method, rt.Pattern, h)
	}

	return nil
}
